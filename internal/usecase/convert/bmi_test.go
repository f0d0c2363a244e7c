package convert

import (
	"testing"

	"github.com/lairegodd/multitools/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	report, err := svc.CalculateBMI(180, 75)
	require.NoError(t, err)

	assert.Equal(t, 23.15, report.BMI)
	assert.Equal(t, domain.BMINormal, report.Category)
	assert.NotEmpty(t, report.Message)
	assert.Equal(t, domain.BMIRanges, report.Ranges, "full range table is echoed back regardless of match")
}

func TestCalculateBMIBoundaries(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	// Heights chosen so that kg/(m^2) lands exactly on the thresholds.
	cases := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     domain.BMICategory
	}{
		{"exactly 18.5 is Normal", 200, 74, domain.BMINormal},
		{"exactly 25 is Overweight", 200, 100, domain.BMIOverweight},
		{"exactly 30 is Obesity", 200, 120, domain.BMIObesity},
		{"just below 18.5 is Underweight", 200, 73.9, domain.BMIUnderweight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := svc.CalculateBMI(tc.heightCm, tc.weightKg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, report.Category)
		})
	}
}

func TestCalculateBMIRejectsNonPositiveInput(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	for _, pair := range [][2]float64{{0, 75}, {180, 0}, {-180, 75}, {180, -75}} {
		_, err := svc.CalculateBMI(pair[0], pair[1])
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Height and weight must be positive numbers", invalid.Reason)
	}
}

func TestCalculateBMIIsDeterministic(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	first, err := svc.CalculateBMI(172.5, 68.2)
	require.NoError(t, err)
	second, err := svc.CalculateBMI(172.5, 68.2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
