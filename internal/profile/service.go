package profile

import (
	"context"
	"fmt"
	"log/slog"
)

// Service validates profile writes and serves read snapshots to the
// coaching engine.
type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// EnsureUser resolves a device key to a user id, creating the user if needed.
func (s *Service) EnsureUser(ctx context.Context, deviceKey string) (int64, error) {
	return s.repo.EnsureUser(ctx, deviceKey)
}

// Get returns the profile exactly as stored, without defaults applied.
func (s *Service) Get(ctx context.Context, userID int64) (Profile, error) {
	return s.repo.Get(ctx, userID)
}

// Snapshot returns the profile with defaults applied for optional fields.
// This is the form the coaching engine consumes.
func (s *Service) Snapshot(ctx context.Context, userID int64) (Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return ApplyDefaults(p), nil
}

func (s *Service) SavePersonal(ctx context.Context, userID int64, p Personal) error {
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivityModeratelyActive
	}
	if err := ValidatePersonal(p); err != nil {
		return err
	}
	if err := s.repo.UpsertPersonal(ctx, userID, p); err != nil {
		return err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile section saved",
		slog.Int64("user_id", userID), slog.String("section", string(SectionPersonal)))
	return nil
}

func (s *Service) SaveGoals(ctx context.Context, userID int64, g Goals) error {
	if g.Timeline == "" {
		g.Timeline = TimelineOngoing
	}
	if err := ValidateGoals(g); err != nil {
		return err
	}
	if err := s.repo.UpsertGoals(ctx, userID, g); err != nil {
		return err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile section saved",
		slog.Int64("user_id", userID), slog.String("section", string(SectionGoals)))
	return nil
}

func (s *Service) SaveEquipment(ctx context.Context, userID int64, e Equipment) error {
	if err := ValidateEquipment(e); err != nil {
		return err
	}
	if err := s.repo.UpsertEquipment(ctx, userID, e); err != nil {
		return err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile section saved",
		slog.Int64("user_id", userID), slog.String("section", string(SectionEquipment)))
	return nil
}

func (s *Service) SaveDietary(ctx context.Context, userID int64, d Dietary) error {
	if d.DietType == "" {
		d.DietType = DietOmnivore
	}
	if err := ValidateDietary(d); err != nil {
		return err
	}
	if err := s.repo.UpsertDietary(ctx, userID, d); err != nil {
		return err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile section saved",
		slog.Int64("user_id", userID), slog.String("section", string(SectionDietary)))
	return nil
}

func (s *Service) SaveLifestyle(ctx context.Context, userID int64, l Lifestyle) error {
	if l.SleepQuality == "" {
		l.SleepQuality = SleepFair
	}
	if l.StressLevel == "" {
		l.StressLevel = StressModerate
	}
	if err := ValidateLifestyle(l); err != nil {
		return err
	}
	if err := s.repo.UpsertLifestyle(ctx, userID, l); err != nil {
		return err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile section saved",
		slog.Int64("user_id", userID), slog.String("section", string(SectionLifestyle)))
	return nil
}
