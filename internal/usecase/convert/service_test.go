package convert

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/lairegodd/multitools/internal/domain"
	"github.com/lairegodd/multitools/internal/engine/ffmpeg"
	"github.com/lairegodd/multitools/internal/staging"

	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/zlog"
)

// fakeDocumentEngine writes fixed bytes into the output directory instead
// of launching LibreOffice.
type fakeDocumentEngine struct {
	output []byte
	err    error

	gotInput  string
	gotFormat string
}

func (f *fakeDocumentEngine) Convert(ctx context.Context, inputPath, outputDir, targetFormat string) (string, error) {
	f.gotInput = inputPath
	f.gotFormat = targetFormat
	if f.err != nil {
		return "", f.err
	}
	path := outputDir + "/converted." + targetFormat
	if err := os.WriteFile(path, f.output, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// fakeTranscoder writes fixed bytes to the allocated output path instead of
// launching ffmpeg.
type fakeTranscoder struct {
	output []byte
	err    error

	gotInput  string
	gotOutput string
	gotArgs   []string
}

func (f *fakeTranscoder) Transcode(ctx context.Context, inputPath, outputPath string, codecArgs []string) error {
	f.gotInput = inputPath
	f.gotOutput = outputPath
	f.gotArgs = append([]string(nil), codecArgs...)
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outputPath, f.output, 0o644)
}

var _ ffmpeg.Client = (*fakeTranscoder)(nil)

func newTestService(t *testing.T, docs *fakeDocumentEngine, audio *fakeTranscoder) (*Service, *staging.Manager) {
	t.Helper()
	zlog.Init()

	mgr, err := staging.NewManager(t.TempDir(), domain.DefaultMaxUploadSize, &zlog.Logger)
	require.NoError(t, err)

	if docs == nil {
		docs = &fakeDocumentEngine{}
	}
	if audio == nil {
		audio = &fakeTranscoder{}
	}

	return NewService(mgr, docs, audio, &zlog.Logger), mgr
}

func stageBytes(t *testing.T, mgr *staging.Manager, name, contentType string, data []byte) *domain.UploadedFile {
	t.Helper()
	up, err := mgr.Stage(bytes.NewReader(data), name, contentType, int64(len(data)))
	require.NoError(t, err)
	return up
}
