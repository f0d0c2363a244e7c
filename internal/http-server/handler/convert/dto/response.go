package dto

import (
	"github.com/lairegodd/multitools/internal/domain"
	"github.com/lairegodd/multitools/internal/envelope"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type DocumentResponse struct {
	envelope.Envelope
}

type ImageResponse struct {
	envelope.Envelope
	OriginalSize     int64   `json:"originalSize"`
	CompressedSize   int64   `json:"compressedSize"`
	CompressionRatio float64 `json:"compressionRatio"`
}

type QRResponse struct {
	envelope.Envelope
	OriginalURL string `json:"originalUrl"`
}

type AudioResponse struct {
	envelope.Envelope
	TargetFormat string `json:"targetFormat"`
	Bitrate      string `json:"bitrate"`
	Size         int64  `json:"size"`
}

type BMIResponse struct {
	BMI      float64           `json:"bmi"`
	Category string            `json:"category"`
	Message  string            `json:"message"`
	Ranges   []domain.BMIRange `json:"ranges"`
}
