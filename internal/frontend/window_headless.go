//go:build headless

package frontend

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// WindowAvailable reports whether the window frontend is compiled in.
const WindowAvailable = false

// WindowFrontend is unavailable in headless builds.
type WindowFrontend struct{}

// NewWindow returns a window frontend that always fails to run.
func NewWindow(*log.Logger, int) *WindowFrontend {
	return &WindowFrontend{}
}

// Run returns ErrUnavailable.
func (w *WindowFrontend) Run(context.Context, Host) error {
	return fmt.Errorf("%w: built without window support", ErrUnavailable)
}
