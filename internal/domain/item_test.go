package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_ComputesRatio(t *testing.T) {
	it, err := NewItem("Bridge", 100, 8, CategoryInfrastructure, "river crossing")
	require.NoError(t, err)

	assert.Equal(t, "Bridge", it.Name())
	assert.Equal(t, 100.0, it.Cost())
	assert.Equal(t, 8.0, it.Benefit())
	assert.Equal(t, "river crossing", it.Description())
	assert.InDelta(t, 0.08, it.BenefitCostRatio(), 1e-12)
	assert.False(t, it.IsEmergencyPriority())
	assert.Equal(t, LowestPriority, it.EmergencyPriorityLevel())
}

func TestNewItem_BenefitBounds(t *testing.T) {
	cases := []struct {
		name    string
		benefit float64
		wantErr bool
	}{
		{"upper bound inclusive", 10, false},
		{"lower bound inclusive", 0, false},
		{"just above upper bound", 10.0001, true},
		{"slightly negative", -0.01, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewItem("x", 10, tc.benefit, CategoryHealth, "")
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.Equal(t, "benefit", vErr.Field)
		})
	}
}

func TestNewItem_RejectsNonPositiveCost(t *testing.T) {
	for _, cost := range []float64{0, -5} {
		_, err := NewItem("x", cost, 5, CategoryHealth, "")
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), "cost %v should fail", cost)
		assert.Equal(t, "cost", vErr.Field)
		assert.Contains(t, err.Error(), "must be positive")
	}
}

func TestNewItem_RejectsInfiniteCost(t *testing.T) {
	_, err := NewItem("x", math.Inf(1), 5, CategoryHealth, "")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "cost", vErr.Field)
	assert.Contains(t, err.Error(), "must be finite")

	assert.Error(t, ValidateCost(math.Inf(-1)))
	assert.Error(t, ValidateCost(math.NaN()))
}

func TestWithBenefit_RecomputesRatioWithoutMutatingOriginal(t *testing.T) {
	orig, err := NewItem("Clinic", 50, 5, CategoryHealth, "")
	require.NoError(t, err)

	updated, err := orig.WithBenefit(10)
	require.NoError(t, err)

	assert.InDelta(t, 0.2, updated.BenefitCostRatio(), 1e-12)
	assert.Equal(t, 5.0, orig.Benefit(), "original must be untouched")
	assert.InDelta(t, 0.1, orig.BenefitCostRatio(), 1e-12)
}

func TestWithBenefit_OutOfRange(t *testing.T) {
	orig, err := NewItem("Clinic", 50, 5, CategoryHealth, "")
	require.NoError(t, err)

	_, err = orig.WithBenefit(11)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestPriorityLabel(t *testing.T) {
	it, err := NewItem("Road", 10, 5, CategoryInfrastructure, "")
	require.NoError(t, err)

	assert.Equal(t, "Normal", it.PriorityLabel())
	assert.Equal(t, "Emergency P1", ClassifyEmergencyPriority(it, true, "").PriorityLabel())
}

func TestDisplayID(t *testing.T) {
	it, err := NewItem("Road", 10, 5, CategoryInfrastructure, "")
	require.NoError(t, err)

	assert.Equal(t, "550e8400", it.WithID("550e8400-e29b-41d4-a716-446655440000").DisplayID())
	assert.Equal(t, "abc", it.WithID("abc").DisplayID())
}

func TestString_IncludesEmergencyMarker(t *testing.T) {
	it, err := NewItem("Road", 10, 5, CategoryInfrastructure, "")
	require.NoError(t, err)

	assert.NotContains(t, it.String(), "EMERGENCY")
	assert.Contains(t, ClassifyEmergencyPriority(it, true, "").String(), "[EMERGENCY PRIORITY: 1]")
}
