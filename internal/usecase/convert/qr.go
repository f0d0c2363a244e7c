package convert

import (
	"github.com/lairegodd/multitools/internal/domain"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQR encodes a URL as a PNG QR image at a fixed size with medium
// error correction. Presence is the only validation; the URL's syntax is
// the caller's business. Identical input yields byte-identical output.
func (s *Service) GenerateQR(rawURL string) (*domain.QRResult, error) {
	if rawURL == "" {
		return nil, invalidInput("URL is required")
	}

	png, err := qrcode.Encode(rawURL, qrcode.Medium, domain.DefaultQRSize)
	if err != nil {
		s.logger.Error().Err(err).Msg("QR encoding failed")
		return nil, conversionFailed(err)
	}

	return &domain.QRResult{
		FileName:    domain.QRFileName,
		MimeType:    domain.MimePNG,
		Data:        png,
		OriginalURL: rawURL,
	}, nil
}
