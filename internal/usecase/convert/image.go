package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/lairegodd/multitools/internal/domain"

	"github.com/google/uuid"
)

// CompressImage re-encodes an uploaded image as JPEG at a fixed quality
// factor, whatever the source format. The output carries a freshly
// generated name; the original name is discarded.
func (s *Service) CompressImage(ctx context.Context, up *domain.UploadedFile) (*domain.ImageResult, error) {
	if !domain.ImageMimeTypes[up.MimeType] {
		return nil, invalidInput("Only JPEG, PNG and WebP images are allowed")
	}

	f, err := os.Open(up.Path)
	if err != nil {
		return nil, conversionFailed(fmt.Errorf("failed to open staged image: %w", err))
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", up.OriginalName).Msg("Failed to decode image")
		return nil, conversionFailed(fmt.Errorf("failed to decode image: %w", err))
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: domain.DefaultJPEGQuality}); err != nil {
		return nil, conversionFailed(fmt.Errorf("failed to encode image: %w", err))
	}

	compressed := buf.Bytes()
	ratio := float64(len(compressed)) / float64(up.Size)

	s.logger.Info().
		Str("filename", up.OriginalName).
		Str("source_format", format).
		Int64("original_size", up.Size).
		Int("compressed_size", len(compressed)).
		Msg("Image compressed")

	return &domain.ImageResult{
		FileName:         uuid.New().String() + ".jpg",
		MimeType:         domain.MimeJPEG,
		Data:             compressed,
		OriginalSize:     up.Size,
		CompressedSize:   int64(len(compressed)),
		CompressionRatio: ratio,
	}, nil
}
