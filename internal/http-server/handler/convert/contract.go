package convert

import (
	"context"
	"io"

	"github.com/lairegodd/multitools/internal/domain"
)

type converterService interface {
	ConvertDocument(ctx context.Context, up *domain.UploadedFile, direction domain.Direction) (*domain.DocumentResult, error)
	CompressImage(ctx context.Context, up *domain.UploadedFile) (*domain.ImageResult, error)
	GenerateQR(rawURL string) (*domain.QRResult, error)
	TranscodeAudio(ctx context.Context, up *domain.UploadedFile, targetFormat, bitrate string) (*domain.AudioResult, error)
	CalculateBMI(heightCm, weightKg float64) (*domain.BMIReport, error)
}

type uploadStager interface {
	Stage(r io.Reader, originalName, declaredType string, size int64) (*domain.UploadedFile, error)
	Release(path string)
}
