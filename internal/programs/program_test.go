package programs_test

import (
	"testing"

	"github.com/peakform/peakformcom/internal/programs"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	assert.True(t, programs.KindWorkout.IsValid())
	assert.True(t, programs.KindDiet.IsValid())
	assert.False(t, programs.Kind("").IsValid())
	assert.False(t, programs.Kind("cardio").IsValid())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "workout", programs.KindWorkout.String())
	assert.Equal(t, "diet", programs.KindDiet.String())
}
