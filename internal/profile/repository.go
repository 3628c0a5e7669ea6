package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TedTes/trakfit/internal/sqlite"
)

// Repository persists profile sections. Each section upserts independently
// so a partially filled profile is a normal state, not an error.
type Repository struct {
	db *sqlite.Database
}

func NewRepository(db *sqlite.Database) *Repository {
	return &Repository{db: db}
}

// EnsureUser resolves a device key to a user id, creating the user on first
// contact.
func (r *Repository) EnsureUser(ctx context.Context, deviceKey string) (int64, error) {
	_, err := r.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO users (device_key) VALUES (?) ON CONFLICT (device_key) DO NOTHING`, deviceKey)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	var id int64
	err = r.db.ReadWrite.QueryRowContext(ctx,
		`SELECT id FROM users WHERE device_key = ?`, deviceKey).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("select user id: %w", err)
	}
	return id, nil
}

// Get assembles the full profile from whichever sections have been saved.
// Sections with no row come back as zero values.
func (r *Repository) Get(ctx context.Context, userID int64) (Profile, error) {
	var p Profile

	err := r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT age_years, sex, height_cm, weight_kg, activity_level
		 FROM profile_personal WHERE user_id = ?`, userID).
		Scan(&p.Personal.AgeYears, &p.Personal.Sex, &p.Personal.HeightCm,
			&p.Personal.WeightKg, &p.Personal.ActivityLevel)
	if err != nil && err != sql.ErrNoRows {
		return Profile{}, fmt.Errorf("select personal: %w", err)
	}

	var secondary sql.NullString
	err = r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT primary_goal, secondary_goal, timeline
		 FROM profile_goals WHERE user_id = ?`, userID).
		Scan(&p.Goals.Primary, &secondary, &p.Goals.Timeline)
	if err != nil && err != sql.ErrNoRows {
		return Profile{}, fmt.Errorf("select goals: %w", err)
	}
	if secondary.Valid {
		g := Goal(secondary.String)
		p.Goals.Secondary = &g
	}

	err = r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT home_gym, commercial_gym, no_equipment,
		        dumbbells, barbells, bands, pull_up_bar, bench, kettlebells, cables, cardio_machine
		 FROM profile_equipment WHERE user_id = ?`, userID).
		Scan(&p.Equipment.HomeGym, &p.Equipment.CommercialGym, &p.Equipment.NoEquipment,
			&p.Equipment.Home.Dumbbells, &p.Equipment.Home.Barbells, &p.Equipment.Home.Bands,
			&p.Equipment.Home.PullUpBar, &p.Equipment.Home.Bench, &p.Equipment.Home.Kettlebells,
			&p.Equipment.Home.Cables, &p.Equipment.Home.CardioMachine)
	if err != nil && err != sql.ErrNoRows {
		return Profile{}, fmt.Errorf("select equipment: %w", err)
	}

	var allergies, cuisines string
	var calTarget, proteinTarget sql.NullInt64
	err = r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT diet_type, allergies, cuisines, calorie_target, protein_target_g
		 FROM profile_dietary WHERE user_id = ?`, userID).
		Scan(&p.Dietary.DietType, &allergies, &cuisines, &calTarget, &proteinTarget)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return Profile{}, fmt.Errorf("select dietary: %w", err)
	default:
		if err := json.Unmarshal([]byte(allergies), &p.Dietary.Allergies); err != nil {
			return Profile{}, fmt.Errorf("decode allergies: %w", err)
		}
		if err := json.Unmarshal([]byte(cuisines), &p.Dietary.CuisinePreferences); err != nil {
			return Profile{}, fmt.Errorf("decode cuisines: %w", err)
		}
		if calTarget.Valid {
			v := int(calTarget.Int64)
			p.Dietary.CalorieTarget = &v
		}
		if proteinTarget.Valid {
			v := int(proteinTarget.Int64)
			p.Dietary.ProteinTargetG = &v
		}
	}

	var habits string
	err = r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT sleep_hours, sleep_quality, stress_level, minutes_per_day, recovery_habits
		 FROM profile_lifestyle WHERE user_id = ?`, userID).
		Scan(&p.Lifestyle.SleepHours, &p.Lifestyle.SleepQuality, &p.Lifestyle.StressLevel,
			&p.Lifestyle.MinutesPerDay, &habits)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return Profile{}, fmt.Errorf("select lifestyle: %w", err)
	default:
		if err := json.Unmarshal([]byte(habits), &p.Lifestyle.RecoveryHabits); err != nil {
			return Profile{}, fmt.Errorf("decode recovery habits: %w", err)
		}
	}

	return p, nil
}

func (r *Repository) UpsertPersonal(ctx context.Context, userID int64, p Personal) error {
	_, err := r.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO profile_personal (user_id, age_years, sex, height_cm, weight_kg, activity_level)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   age_years = excluded.age_years,
		   sex = excluded.sex,
		   height_cm = excluded.height_cm,
		   weight_kg = excluded.weight_kg,
		   activity_level = excluded.activity_level`,
		userID, p.AgeYears, p.Sex, p.HeightCm, p.WeightKg, p.ActivityLevel)
	if err != nil {
		return fmt.Errorf("upsert personal: %w", err)
	}
	return nil
}

func (r *Repository) UpsertGoals(ctx context.Context, userID int64, g Goals) error {
	var secondary any
	if g.Secondary != nil {
		secondary = string(*g.Secondary)
	}
	_, err := r.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO profile_goals (user_id, primary_goal, secondary_goal, timeline)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   primary_goal = excluded.primary_goal,
		   secondary_goal = excluded.secondary_goal,
		   timeline = excluded.timeline`,
		userID, g.Primary, secondary, g.Timeline)
	if err != nil {
		return fmt.Errorf("upsert goals: %w", err)
	}
	return nil
}

func (r *Repository) UpsertEquipment(ctx context.Context, userID int64, e Equipment) error {
	_, err := r.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO profile_equipment (user_id, home_gym, commercial_gym, no_equipment,
		   dumbbells, barbells, bands, pull_up_bar, bench, kettlebells, cables, cardio_machine)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   home_gym = excluded.home_gym,
		   commercial_gym = excluded.commercial_gym,
		   no_equipment = excluded.no_equipment,
		   dumbbells = excluded.dumbbells,
		   barbells = excluded.barbells,
		   bands = excluded.bands,
		   pull_up_bar = excluded.pull_up_bar,
		   bench = excluded.bench,
		   kettlebells = excluded.kettlebells,
		   cables = excluded.cables,
		   cardio_machine = excluded.cardio_machine`,
		userID, e.HomeGym, e.CommercialGym, e.NoEquipment,
		e.Home.Dumbbells, e.Home.Barbells, e.Home.Bands, e.Home.PullUpBar,
		e.Home.Bench, e.Home.Kettlebells, e.Home.Cables, e.Home.CardioMachine)
	if err != nil {
		return fmt.Errorf("upsert equipment: %w", err)
	}
	return nil
}

func (r *Repository) UpsertDietary(ctx context.Context, userID int64, d Dietary) error {
	allergies, err := encodeStrings(d.Allergies)
	if err != nil {
		return fmt.Errorf("encode allergies: %w", err)
	}
	cuisines, err := encodeStrings(d.CuisinePreferences)
	if err != nil {
		return fmt.Errorf("encode cuisines: %w", err)
	}
	var calTarget, proteinTarget any
	if d.CalorieTarget != nil {
		calTarget = *d.CalorieTarget
	}
	if d.ProteinTargetG != nil {
		proteinTarget = *d.ProteinTargetG
	}
	_, err = r.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO profile_dietary (user_id, diet_type, allergies, cuisines, calorie_target, protein_target_g)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   diet_type = excluded.diet_type,
		   allergies = excluded.allergies,
		   cuisines = excluded.cuisines,
		   calorie_target = excluded.calorie_target,
		   protein_target_g = excluded.protein_target_g`,
		userID, d.DietType, allergies, cuisines, calTarget, proteinTarget)
	if err != nil {
		return fmt.Errorf("upsert dietary: %w", err)
	}
	return nil
}

func (r *Repository) UpsertLifestyle(ctx context.Context, userID int64, l Lifestyle) error {
	habits, err := encodeStrings(l.RecoveryHabits)
	if err != nil {
		return fmt.Errorf("encode recovery habits: %w", err)
	}
	_, err = r.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO profile_lifestyle (user_id, sleep_hours, sleep_quality, stress_level, minutes_per_day, recovery_habits)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   sleep_hours = excluded.sleep_hours,
		   sleep_quality = excluded.sleep_quality,
		   stress_level = excluded.stress_level,
		   minutes_per_day = excluded.minutes_per_day,
		   recovery_habits = excluded.recovery_habits`,
		userID, l.SleepHours, l.SleepQuality, l.StressLevel, l.MinutesPerDay, habits)
	if err != nil {
		return fmt.Errorf("upsert lifestyle: %w", err)
	}
	return nil
}

// encodeStrings stores nil slices as empty JSON arrays so reads round-trip
// without null handling.
func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
