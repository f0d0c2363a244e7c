package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lairegodd/multitools/internal/domain"
)

// TranscodeAudio converts an uploaded audio file to the requested target
// format via the external transcoder. Both the target format and the input
// MIME type are checked against their allow-lists before any process is
// launched. The transcoder writes to a staged output path that is released
// after its contents are read, whether or not the run succeeded.
func (s *Service) TranscodeAudio(ctx context.Context, up *domain.UploadedFile, targetFormat, bitrate string) (*domain.AudioResult, error) {
	format := domain.AudioFormat(strings.ToLower(targetFormat))
	if !domain.AudioOutputFormats[format] {
		return nil, invalidInput("Invalid target format")
	}
	if !domain.AudioInputMimeTypes[up.MimeType] {
		return nil, invalidInput("Invalid audio file type")
	}

	if bitrate == "" {
		bitrate = domain.DefaultBitrate
	}

	outputPath := s.staging.AllocateOutput(string(format))
	defer s.staging.Release(outputPath)

	if err := s.audio.Transcode(ctx, up.Path, outputPath, codecArgs(format, bitrate)); err != nil {
		s.logger.Error().Err(err).Str("filename", up.OriginalName).Str("target_format", string(format)).Msg("Audio transcoding failed")
		return nil, conversionFailed(err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, conversionFailed(fmt.Errorf("failed to read transcoded audio: %w", err))
	}

	name := strings.TrimSuffix(up.OriginalName, filepath.Ext(up.OriginalName)) + "." + string(format)

	s.logger.Info().
		Str("filename", up.OriginalName).
		Str("target_format", string(format)).
		Str("bitrate", bitrate).
		Int("size", len(data)).
		Msg("Audio transcoded")

	return &domain.AudioResult{
		FileName:     name,
		MimeType:     domain.AudioMimeType(format),
		Data:         data,
		TargetFormat: format,
		Bitrate:      bitrate,
		Size:         int64(len(data)),
	}, nil
}

// codecArgs builds the format-specific part of the transcoder argument
// list. The bitrate is forwarded verbatim for lossy formats; wav ignores it
// and forces uncompressed 16-bit little-endian PCM.
func codecArgs(format domain.AudioFormat, bitrate string) []string {
	switch format {
	case domain.FormatWAV:
		return []string{"-c:a", "pcm_s16le"}
	case domain.FormatMP3:
		return []string{"-c:a", "libmp3lame", "-b:a", bitrate}
	case domain.FormatAAC:
		return []string{"-c:a", "aac", "-b:a", bitrate}
	case domain.FormatOGG:
		return []string{"-c:a", "libvorbis", "-b:a", bitrate}
	default:
		return nil
	}
}
