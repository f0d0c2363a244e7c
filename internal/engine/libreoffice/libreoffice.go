// Package libreoffice wraps a headless LibreOffice binary as a document
// conversion engine.
package libreoffice

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// Client defines the document conversion behaviour the pipeline depends on.
// Convert renders inputPath into targetFormat inside outputDir and returns
// the path of the produced file.
type Client interface {
	Convert(ctx context.Context, inputPath, outputDir, targetFormat string) (string, error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithTimeout bounds a single conversion run. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *CLI) {
		c.timeout = timeout
	}
}

// CLI drives soffice in headless mode. Each run gets its own
// UserInstallation directory so concurrent conversions do not fight over
// the profile lock.
type CLI struct {
	binary  string
	timeout time.Duration
}

func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "soffice"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

func (c *CLI) Convert(ctx context.Context, inputPath, outputDir, targetFormat string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	profileDir, err := os.MkdirTemp("", "soffice-profile-")
	if err != nil {
		return "", fmt.Errorf("failed to create profile directory: %w", err)
	}
	defer os.RemoveAll(profileDir)

	args := []string{
		"-env:UserInstallation=file://" + profileDir,
		"--headless",
		"--convert-to", targetFormat,
		"--outdir", outputDir,
		inputPath,
	}

	cmd := commandContext(ctx, c.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("document engine failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	// soffice names the output after the input stem; locate it instead of
	// guessing, since the engine may normalize the name.
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	produced := filepath.Join(outputDir, stem+"."+targetFormat)
	if _, statErr := os.Stat(produced); statErr == nil {
		return produced, nil
	}

	matches, _ := filepath.Glob(filepath.Join(outputDir, "*."+targetFormat))
	if len(matches) == 0 {
		return "", fmt.Errorf("document engine produced no %s output: %s", targetFormat, strings.TrimSpace(string(output)))
	}
	return matches[0], nil
}

var _ Client = (*CLI)(nil)
