// Package ffmpeg wraps the ffmpeg binary as an audio transcoding engine.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// ProcessError reports a transcoder run that did not produce output.
// ExitCode is -1 when the process could not be started at all, in which
// case Err carries the underlying system error.
type ProcessError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ffmpeg could not be started: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, strings.TrimSpace(e.Stderr))
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Client defines the audio transcoding behaviour the conversion pipeline
// depends on.
type Client interface {
	Transcode(ctx context.Context, inputPath, outputPath string, codecArgs []string) error
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

// WithTimeout bounds a single transcoder run. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *CLI) {
		c.timeout = timeout
	}
}

// CLI invokes ffmpeg as a child process. The destination is always
// overwritten and video streams are always dropped; callers supply only the
// format-specific codec arguments.
type CLI struct {
	binary  string
	timeout time.Duration
}

func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Transcode runs ffmpeg and blocks until it finishes. Diagnostic output is
// accumulated from stderr and attached to the returned ProcessError on any
// nonzero exit; stdout is ignored.
func (c *CLI) Transcode(ctx context.Context, inputPath, outputPath string, codecArgs []string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{"-y", "-i", inputPath, "-vn"}
	args = append(args, codecArgs...)
	args = append(args, outputPath)

	cmd := commandContext(ctx, c.binary, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &ProcessError{ExitCode: -1, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		return &ProcessError{ExitCode: -1, Err: err}
	}

	// ffmpeg reports progress as one carriage-return-separated stream with
	// no newline until the run ends, so the capture must be line-agnostic
	// and unbounded: anything less loses the diagnostic tail and leaves the
	// child blocked on a full pipe.
	var diagnostics bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		io.Copy(&diagnostics, stderr)
	}()

	<-done
	err = cmd.Wait()
	if err == nil {
		return nil
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		return &ProcessError{ExitCode: exitErr.ExitCode(), Stderr: diagnostics.String()}
	}
	return &ProcessError{ExitCode: -1, Stderr: diagnostics.String(), Err: err}
}

var _ Client = (*CLI)(nil)
