package frontend

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// HeadlessFrontend runs without any display and writes the last frame when
// it stops.
type HeadlessFrontend struct {
	logger   *log.Logger
	out      io.Writer
	duration time.Duration
}

// NewHeadless returns a headless frontend that stops after duration,
// a zero duration runs until the context is done.
func NewHeadless(logger *log.Logger, out io.Writer, duration time.Duration) *HeadlessFrontend {
	return &HeadlessFrontend{
		logger:   logger,
		out:      out,
		duration: duration,
	}
}

// Run waits for the duration or the context and writes the final frame.
func (h *HeadlessFrontend) Run(ctx context.Context, host Host) error {
	var timeout <-chan time.Time
	if h.duration > 0 {
		timer := time.NewTimer(h.duration)
		defer timer.Stop()
		timeout = timer.C
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case <-timeout:
		h.logger.Debug("Headless run finished", log.String("duration", h.duration.String()))
	}

	snapshot := host.Snapshot()
	if err := RenderText(h.out, &snapshot.Framebuffer); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(h.out, statusLine(snapshot)); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	return runErr
}
