package progress_test

import (
	"testing"
	"time"

	"github.com/peakform/peakformcom/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementType_DefaultUnit(t *testing.T) {
	assert.Equal(t, "kg", progress.TypeWeight.DefaultUnit())
	assert.Equal(t, "cm", progress.TypeWaist.DefaultUnit())
	assert.Equal(t, "cm", progress.TypeHeight.DefaultUnit())
	assert.Equal(t, "cm", progress.TypeShoulder.DefaultUnit())
}

func TestMeasurement_DisplayUnit(t *testing.T) {
	m := progress.Measurement{Type: progress.TypeWeight}
	assert.Equal(t, "kg", m.DisplayUnit())

	m.Unit = "lbs"
	assert.Equal(t, "lbs", m.DisplayUnit())
}

func TestNormalize(t *testing.T) {
	recordedAt := time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC)

	t.Run("valid measurement", func(t *testing.T) {
		m := progress.Normalize(map[string]any{
			"type":       "weight",
			"value":      82.5,
			"recordedAt": "2025-03-14T08:30:00Z",
			"notes":      "morning weigh-in",
		})
		require.NotNil(t, m)
		assert.Equal(t, progress.TypeWeight, m.Type)
		assert.Equal(t, 82.5, m.Value)
		assert.True(t, recordedAt.Equal(m.RecordedAt))
		assert.Equal(t, "morning weigh-in", m.Notes)
	})

	t.Run("type is case insensitive and trimmed", func(t *testing.T) {
		m := progress.Normalize(map[string]any{
			"type":       "  Waist ",
			"value":      90,
			"recordedAt": "2025-03-14",
		})
		require.NotNil(t, m)
		assert.Equal(t, progress.TypeWaist, m.Type)
	})

	t.Run("value given as string", func(t *testing.T) {
		m := progress.Normalize(map[string]any{
			"type":       "weight",
			"value":      "81.2",
			"recordedAt": "2025-03-14",
		})
		require.NotNil(t, m)
		assert.Equal(t, 81.2, m.Value)
	})

	t.Run("date only timestamp", func(t *testing.T) {
		m := progress.Normalize(map[string]any{
			"type":       "weight",
			"value":      80.0,
			"recordedAt": "2025-03-14",
		})
		require.NotNil(t, m)
		assert.Equal(t, 2025, m.RecordedAt.Year())
		assert.Equal(t, time.March, m.RecordedAt.Month())
		assert.Equal(t, 14, m.RecordedAt.Day())
	})

	t.Run("unknown type dropped", func(t *testing.T) {
		assert.Nil(t, progress.Normalize(map[string]any{
			"type":       "bodyfat",
			"value":      20.0,
			"recordedAt": "2025-03-14",
		}))
	})

	t.Run("non numeric value dropped", func(t *testing.T) {
		assert.Nil(t, progress.Normalize(map[string]any{
			"type":       "weight",
			"value":      "heavy",
			"recordedAt": "2025-03-14",
		}))
	})

	t.Run("unparseable date dropped", func(t *testing.T) {
		assert.Nil(t, progress.Normalize(map[string]any{
			"type":       "weight",
			"value":      80.0,
			"recordedAt": "not-a-date",
		}))
	})

	t.Run("missing recordedAt dropped", func(t *testing.T) {
		assert.Nil(t, progress.Normalize(map[string]any{
			"type":  "weight",
			"value": 80.0,
		}))
	})

	t.Run("nil input dropped", func(t *testing.T) {
		assert.Nil(t, progress.Normalize(nil))
	})
}

func TestGroup(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	records := []progress.Measurement{
		{ID: "w1", Type: progress.TypeWeight, Value: 80, RecordedAt: day(10)},
		{ID: "a1", Type: progress.TypeArm, Value: 35, RecordedAt: day(9)},
		{ID: "w2", Type: progress.TypeWeight, Value: 82, RecordedAt: day(5)},
		{ID: "a2", Type: progress.TypeArm, Value: 34, RecordedAt: day(3)},
		{ID: "w3", Type: progress.TypeWeight, Value: 85, RecordedAt: day(1)},
	}

	groups := progress.Group(records)

	weights := groups.Of(progress.TypeWeight)
	require.Len(t, weights, 3)
	// relative input order is preserved within a bucket
	assert.Equal(t, "w1", weights[0].ID)
	assert.Equal(t, "w2", weights[1].ID)
	assert.Equal(t, "w3", weights[2].ID)

	arms := groups.Of(progress.TypeArm)
	require.Len(t, arms, 2)

	// no records lost in the partition
	total := 0
	for _, mt := range []progress.MeasurementType{
		progress.TypeWeight, progress.TypeArm,
	} {
		total += len(groups.Of(mt))
	}
	assert.Equal(t, len(records), total)

	assert.Empty(t, groups.Of(progress.TypeNeck))
}

func TestSortDescending(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	records := []progress.Measurement{
		{ID: "old", RecordedAt: day(1)},
		{ID: "new", RecordedAt: day(20)},
		{ID: "mid", RecordedAt: day(10)},
	}

	progress.SortDescending(records)

	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "mid", records[1].ID)
	assert.Equal(t, "old", records[2].ID)
}

func TestMeasurement_Valid(t *testing.T) {
	valid := progress.Measurement{
		Type:       progress.TypeWeight,
		Value:      80,
		RecordedAt: time.Now(),
	}
	assert.True(t, valid.Valid())

	invalidType := valid
	invalidType.Type = "bodyfat"
	assert.False(t, invalidType.Valid())

	zeroTime := valid
	zeroTime.RecordedAt = time.Time{}
	assert.False(t, zeroTime.Valid())
}
