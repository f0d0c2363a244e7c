// Package convert implements the five conversion strategies behind the
// upload-and-convert pipeline. Each strategy validates its own input,
// delegates the real work to an engine or codec, and returns binary output
// plus metadata; temporary output files are always released after reading.
package convert

import (
	"github.com/lairegodd/multitools/internal/engine/ffmpeg"
	"github.com/lairegodd/multitools/internal/engine/libreoffice"

	"github.com/wb-go/wbf/zlog"
)

type Service struct {
	staging   stager
	documents libreoffice.Client
	audio     ffmpeg.Client
	logger    *zlog.Zerolog
}

func NewService(staging stager, documents libreoffice.Client, audio ffmpeg.Client, logger *zlog.Zerolog) *Service {
	return &Service{
		staging:   staging,
		documents: documents,
		audio:     audio,
		logger:    logger,
	}
}
