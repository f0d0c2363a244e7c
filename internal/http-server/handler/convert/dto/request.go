package dto

type QRRequest struct {
	URL string `json:"url" validate:"required"`
}

type BMIRequest struct {
	HeightCm float64 `json:"heightCm" validate:"required,gt=0"`
	WeightKg float64 `json:"weightKg" validate:"required,gt=0"`
}
