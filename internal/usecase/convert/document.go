package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lairegodd/multitools/internal/domain"
)

// ConvertDocument runs the document engine in the requested direction.
// The uploaded extension must strictly match the direction's source format;
// mismatches are rejected before the engine is invoked.
func (s *Service) ConvertDocument(ctx context.Context, up *domain.UploadedFile, direction domain.Direction) (*domain.DocumentResult, error) {
	var sourceExt, targetFormat, outputMime string
	switch direction {
	case domain.DocxToPDF:
		sourceExt, targetFormat, outputMime = ".docx", "pdf", domain.MimePDF
	case domain.PDFToDocx:
		sourceExt, targetFormat, outputMime = ".pdf", "docx", domain.MimeDocx
	default:
		return nil, invalidInput("Unsupported conversion direction")
	}

	if !strings.EqualFold(up.Extension, sourceExt) {
		return nil, invalidInput(fmt.Sprintf("Only %s files are allowed", sourceExt))
	}

	outputDir, err := s.staging.AllocateDir()
	if err != nil {
		return nil, conversionFailed(err)
	}
	defer s.staging.Release(outputDir)

	outputPath, err := s.documents.Convert(ctx, up.Path, outputDir, targetFormat)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", up.OriginalName).Str("direction", string(direction)).Msg("Document conversion failed")
		return nil, conversionFailed(err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, conversionFailed(fmt.Errorf("failed to read converted document: %w", err))
	}

	name := strings.TrimSuffix(up.OriginalName, filepath.Ext(up.OriginalName)) + "." + targetFormat

	s.logger.Info().
		Str("filename", up.OriginalName).
		Str("direction", string(direction)).
		Int("size", len(data)).
		Msg("Document converted")

	return &domain.DocumentResult{
		FileName: name,
		MimeType: outputMime,
		Data:     data,
	}, nil
}
