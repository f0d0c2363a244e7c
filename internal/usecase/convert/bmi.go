package convert

import (
	"math"

	"github.com/lairegodd/multitools/internal/domain"
)

// CalculateBMI computes the body mass index from height in centimeters and
// weight in kilograms, rounded to two decimals, and classifies it against
// the fixed range table. The full table is echoed back whichever band
// matched. Pure: no I/O, identical input yields identical output.
func (s *Service) CalculateBMI(heightCm, weightKg float64) (*domain.BMIReport, error) {
	if heightCm <= 0 || weightKg <= 0 || math.IsNaN(heightCm) || math.IsNaN(weightKg) {
		return nil, invalidInput("Height and weight must be positive numbers")
	}

	heightM := heightCm / 100
	bmi := math.Round(weightKg/(heightM*heightM)*100) / 100

	category := categorizeBMI(bmi)

	return &domain.BMIReport{
		BMI:      bmi,
		Category: category,
		Message:  domain.BMIMessages[category],
		Ranges:   domain.BMIRanges,
	}, nil
}

// Bands are half-open on the lower bound: 18.5 is Normal, 25 is Overweight,
// 30 is Obesity.
func categorizeBMI(bmi float64) domain.BMICategory {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight
	case bmi < 25:
		return domain.BMINormal
	case bmi < 30:
		return domain.BMIOverweight
	default:
		return domain.BMIObesity
	}
}
