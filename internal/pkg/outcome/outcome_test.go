package outcome_test

import (
	"testing"

	"dispatch/internal/pkg/outcome"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Success(t *testing.T) {
	r := outcome.Success(42)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Value())
	assert.Nil(t, r.Err())
}

func TestResult_Failure(t *testing.T) {
	r := outcome.Failure[int](outcome.NewError("trip_not_found", "trip 123 does not exist"))

	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())
	assert.Zero(t, r.Value())
	require.NotNil(t, r.Err())
	assert.Equal(t, "trip_not_found", r.Err().Code)
	assert.Equal(t, "trip_not_found: trip 123 does not exist", r.Err().Error())
}

func TestResult_FailureWithNilError(t *testing.T) {
	r := outcome.Failure[string](nil)

	require.NotNil(t, r.Err())
	assert.Equal(t, "unknown", r.Err().Code)
}

func TestResult_Match(t *testing.T) {
	t.Run("success branch", func(t *testing.T) {
		var got int
		outcome.Success(7).Match(
			func(v int) { got = v },
			func(*outcome.Error) { t.Fatal("failure branch must not run") },
		)
		assert.Equal(t, 7, got)
	})

	t.Run("failure branch", func(t *testing.T) {
		var got *outcome.Error
		outcome.Failure[int](outcome.NewError("invalid_event", "nope")).Match(
			func(int) { t.Fatal("success branch must not run") },
			func(e *outcome.Error) { got = e },
		)
		require.NotNil(t, got)
		assert.Equal(t, "invalid_event", got.Code)
	})
}

func TestMap(t *testing.T) {
	doubled := outcome.Map(outcome.Success(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.Value())

	failed := outcome.Map(outcome.Failure[int](outcome.NewError("x", "y")), func(v int) int { return v })
	assert.True(t, failed.IsFailure())
	assert.Equal(t, "x", failed.Err().Code)
}
