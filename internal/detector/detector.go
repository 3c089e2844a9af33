// Package detector handles frontend detection.
package detector

import (
	"os"
	"runtime"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Detector selects the frontend from options and the environment.
type Detector struct {
	logger *log.Logger

	windowAvailable bool
	hasDisplay      func() bool
	isTerminal      func() bool
}

// New creates a new frontend detector for the current process.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger:          logger,
		windowAvailable: frontend.WindowAvailable,
		hasDisplay:      hasDisplay,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Detect determines the frontend name. An explicitly selected frontend is
// returned unchanged, otherwise a window is preferred over the terminal and
// headless mode is the fallback.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Frontend != "" && opts.Frontend != frontend.Auto {
		return opts.Frontend
	}

	name := d.detectFromEnvironment()
	d.logger.Debug("Auto-detected frontend",
		log.String("frontend", name),
		log.String("os", runtime.GOOS))
	return name
}

func (d *Detector) detectFromEnvironment() string {
	switch {
	case d.windowAvailable && d.hasDisplay():
		return frontend.Window
	case d.isTerminal():
		return frontend.Terminal
	default:
		return frontend.Headless
	}
}

// hasDisplay reports whether a graphical session is reachable.
func hasDisplay() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	default:
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}
