package catalog_test

import (
	"testing"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Exercises())
	assert.NotEmpty(t, c.Meals())
}

func TestExerciseLookup(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	e, err := c.Exercise("push_up_001")
	require.NoError(t, err)
	assert.Equal(t, "Push-Up", e.Name)
	assert.Equal(t, catalog.CategoryCompound, e.Category)

	_, err = c.Exercise("no_such_exercise")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestReferencesResolve(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	for _, e := range c.Exercises() {
		refs := append([]string{e.ProgressionID, e.RegressionID}, e.AlternativeIDs...)
		for _, ref := range refs {
			if ref == "" {
				continue
			}
			_, err := c.Exercise(ref)
			assert.NoErrorf(t, err, "exercise %s references %s", e.ID, ref)
		}
	}
}

func TestMealsForDiet(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	vegan := c.MealsForDiet(profile.DietVegan)
	require.NotEmpty(t, vegan)
	for _, m := range vegan {
		assert.Truef(t, m.SuitsDiet(profile.DietVegan), "meal %s not vegan", m.ID)
	}

	// At least three vegan meals so a full day plan can be filled.
	assert.GreaterOrEqual(t, len(vegan), 3)
}

func TestAvgReps(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "8-12", want: 10},
		{in: "3-6", want: 4.5},
		{in: "12", want: 12},
		{in: " 10 - 14 ", want: 12},
		{in: "12-8", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "8-max", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := catalog.AvgReps(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDifficultyAllows(t *testing.T) {
	tests := []struct {
		level    catalog.Difficulty
		exercise catalog.Difficulty
		want     bool
	}{
		{catalog.DifficultyBeginner, catalog.DifficultyBeginner, true},
		{catalog.DifficultyBeginner, catalog.DifficultyIntermediate, false},
		{catalog.DifficultyBeginner, catalog.DifficultyAdvanced, false},
		{catalog.DifficultyIntermediate, catalog.DifficultyBeginner, true},
		{catalog.DifficultyIntermediate, catalog.DifficultyIntermediate, true},
		{catalog.DifficultyIntermediate, catalog.DifficultyAdvanced, false},
		{catalog.DifficultyAdvanced, catalog.DifficultyBeginner, true},
		{catalog.DifficultyAdvanced, catalog.DifficultyAdvanced, true},
		{catalog.Difficulty("elite"), catalog.DifficultyBeginner, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, tt.level.Allows(tt.exercise),
			"%s allows %s", tt.level, tt.exercise)
	}
}

func TestExerciseKind(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	kinds := map[string]catalog.Kind{
		"push_up_001":       catalog.KindStrength,
		"db_curl_001":       catalog.KindStrength,
		"plank_001":         catalog.KindStability,
		"jumping_jacks_001": catalog.KindCardio,
	}
	for id, want := range kinds {
		e, err := c.Exercise(id)
		require.NoError(t, err)
		assert.Equalf(t, want, e.Kind(), "exercise %s", id)
	}
}
