package progress_test

import (
	"testing"

	"github.com/peakform/peakformcom/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achievementsByID(achievements []progress.Achievement) map[string]progress.Achievement {
	byID := map[string]progress.Achievement{}
	for _, a := range achievements {
		byID[a.ID] = a
	}
	return byID
}

func TestEvaluateAchievements_NoData(t *testing.T) {
	achievements := progress.EvaluateAchievements(nil, nil)
	require.Len(t, achievements, 1)
	assert.Equal(t, "first-steps", achievements[0].ID)
	assert.False(t, achievements[0].Earned)
	assert.Equal(t, "sprout", achievements[0].IconRef)
}

func TestEvaluateAchievements_TrackingBadge(t *testing.T) {
	achievements := progress.EvaluateAchievements(weightSeries(80), nil)
	byID := achievementsByID(achievements)

	tracking, ok := byID["latest-entry"]
	require.True(t, ok)
	assert.True(t, tracking.Earned)
	assert.Equal(t, "Consistent Tracking", tracking.Title)
	assert.Equal(t, "scale", tracking.IconRef)
	assert.Equal(t, "Mar 20, 2025", tracking.Date)

	// single record, no trend yet
	_, ok = byID["weight-trend"]
	assert.False(t, ok)
}

func TestEvaluateAchievements_WeightTrend(t *testing.T) {
	t.Run("losing", func(t *testing.T) {
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(80, 82, 85), nil))
		trend, ok := byID["weight-trend"]
		require.True(t, ok)
		assert.True(t, trend.Earned)
		assert.Equal(t, "Losing Weight", trend.Title)
		assert.Equal(t, "trending-down", trend.IconRef)
	})

	t.Run("gaining", func(t *testing.T) {
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(85, 82, 80), nil))
		trend, ok := byID["weight-trend"]
		require.True(t, ok)
		assert.Equal(t, "Gaining Weight", trend.Title)
		assert.Equal(t, "trending-up", trend.IconRef)
	})

	t.Run("inside the dead zone", func(t *testing.T) {
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(80.05, 80.0), nil))
		_, ok := byID["weight-trend"]
		assert.False(t, ok)
	})
}

func TestEvaluateAchievements_TargetBadge(t *testing.T) {
	t.Run("halfway there", func(t *testing.T) {
		target := 75.0
		// first 85, latest 80: covered 5 of 10
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(80, 83, 85), &target))
		badge, ok := byID["target-weight"]
		require.True(t, ok)
		assert.False(t, badge.Earned)
		require.NotNil(t, badge.Progress)
		assert.Equal(t, 50, *badge.Progress)
		assert.Contains(t, badge.Description, "50% of the way to 75.0 kg")
	})

	t.Run("target crossed", func(t *testing.T) {
		target := 78.0
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(78, 80, 85), &target))
		badge, ok := byID["target-weight"]
		require.True(t, ok)
		assert.True(t, badge.Earned)
		assert.Nil(t, badge.Progress)
		assert.NotEmpty(t, badge.Date)
	})

	t.Run("target overshot still earned", func(t *testing.T) {
		target := 78.0
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(76, 80, 85), &target))
		badge := byID["target-weight"]
		assert.True(t, badge.Earned)
	})

	t.Run("moving away from target clamps at zero", func(t *testing.T) {
		target := 75.0
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(88, 86, 85), &target))
		badge, ok := byID["target-weight"]
		require.True(t, ok)
		assert.False(t, badge.Earned)
		require.NotNil(t, badge.Progress)
		assert.Equal(t, 0, *badge.Progress)
	})

	t.Run("target equals first weight", func(t *testing.T) {
		target := 85.0
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(85, 85), &target))
		badge, ok := byID["target-weight"]
		require.True(t, ok)
		// zero distance counts as arrived
		assert.True(t, badge.Earned)
	})

	t.Run("no target no badge", func(t *testing.T) {
		byID := achievementsByID(progress.EvaluateAchievements(weightSeries(80, 85), nil))
		_, ok := byID["target-weight"]
		assert.False(t, ok)
	})
}
