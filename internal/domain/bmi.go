package domain

// BMICategory names one band of the fixed BMI classification table.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObesity     BMICategory = "Obesity"
)

// BMIRange is one row of the classification table echoed back with every
// calculation, whichever band matched.
type BMIRange struct {
	Category BMICategory `json:"category"`
	Range    string      `json:"range"`
}

// BMIRanges is the full fixed table. Lower bounds are inclusive, upper
// bounds exclusive.
var BMIRanges = []BMIRange{
	{Category: BMIUnderweight, Range: "< 18.5"},
	{Category: BMINormal, Range: "18.5 - 24.9"},
	{Category: BMIOverweight, Range: "25 - 29.9"},
	{Category: BMIObesity, Range: ">= 30"},
}

// BMIMessages carries the fixed advisory text per category.
var BMIMessages = map[BMICategory]string{
	BMIUnderweight: "You are below the healthy weight range. Consider consulting a nutritionist.",
	BMINormal:      "You are within the healthy weight range. Keep it up!",
	BMIOverweight:  "You are above the healthy weight range. Regular exercise and a balanced diet can help.",
	BMIObesity:     "You are well above the healthy weight range. Please consider consulting a healthcare professional.",
}

// BMIReport is the result of one BMI calculation.
type BMIReport struct {
	BMI      float64
	Category BMICategory
	Message  string
	Ranges   []BMIRange
}
