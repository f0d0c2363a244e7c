// Package staging manages the shared ephemeral directory where uploaded and
// produced files live for the duration of a single request.
package staging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lairegodd/multitools/internal/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

var ErrFileTooLarge = errors.New("file too large")

// Manager allocates uniquely-named paths under a staging root and removes
// them on request. Paths are uuid-based, so concurrent requests never collide
// and no locking is needed.
type Manager struct {
	root          string
	maxUploadSize int64
	logger        *zlog.Zerolog
}

func NewManager(root string, maxUploadSize int64, logger *zlog.Zerolog) (*Manager, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}

	return &Manager{
		root:          root,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}, nil
}

// Stage writes the incoming bytes to a fresh path and returns the staged
// file's descriptor. Uploads above the size ceiling are rejected before
// anything is written. When the declared content type is missing or generic,
// the staged bytes are sniffed instead.
func (m *Manager) Stage(r io.Reader, originalName, declaredType string, size int64) (*domain.UploadedFile, error) {
	if size > m.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(m.root, uuid.New().String()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(r, m.maxUploadSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		m.Release(path)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}
	if written > m.maxUploadSize {
		m.Release(path)
		return nil, ErrFileTooLarge
	}

	contentType := declaredType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = m.sniffType(path)
	}

	m.logger.Debug().
		Str("path", path).
		Str("filename", originalName).
		Int64("size", written).
		Msg("File staged")

	return &domain.UploadedFile{
		Path:         path,
		OriginalName: originalName,
		MimeType:     contentType,
		Size:         written,
		Extension:    ext,
	}, nil
}

// AllocateOutput returns a fresh unique path for strategies that write
// their result to disk. Nothing is created; the path is reserved by its
// uniqueness alone.
func (m *Manager) AllocateOutput(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(m.root, uuid.New().String()+ext)
}

// AllocateDir creates a fresh unique directory for strategies whose engine
// writes into a directory rather than a named file.
func (m *Manager) AllocateDir() (string, error) {
	dir := filepath.Join(m.root, uuid.New().String())
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return dir, nil
}

// Release removes a staged path, file or directory. It never fails: cleanup
// is best-effort and must not mask the request's primary outcome, so errors
// are logged and swallowed. Empty paths are ignored.
func (m *Manager) Release(path string) {
	if path == "" {
		return
	}

	if err := os.RemoveAll(path); err != nil {
		m.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove staged file")
	}
}

// CleanStale removes staging entries older than maxAge. Leftovers only exist
// after a crash; a normally completed request removes its own files.
func (m *Manager) CleanStale(maxAge time.Duration) int {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		if !os.IsNotExist(err) {
			m.logger.Warn().Err(err).Str("dir", m.root).Msg("Failed to scan staging directory")
		}
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, entry := range entries {
		path := filepath.Join(m.root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(path); err != nil {
				m.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove stale entry")
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		m.logger.Info().Int("removed", removed).Str("dir", m.root).Msg("Stale staging files removed")
	}

	return removed
}

func (m *Manager) sniffType(path string) string {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	return mt.String()
}
