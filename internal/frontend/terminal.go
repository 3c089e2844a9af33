package frontend

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	// keyHoldDuration is how long a key stays pressed after its last input
	// byte, terminals report no key release events.
	keyHoldDuration = 150 * time.Millisecond

	frameInterval = time.Second / 60

	keyEscape = 0x1B
	keyCtrlC  = 0x03
)

// terminal control sequences
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// TerminalFrontend renders into the terminal and reads keys from raw stdin.
type TerminalFrontend struct {
	logger *log.Logger
	in     *os.File
	out    *os.File
}

// NewTerminal returns a terminal frontend using the given input and output.
func NewTerminal(logger *log.Logger, in, out *os.File) *TerminalFrontend {
	return &TerminalFrontend{
		logger: logger,
		in:     in,
		out:    out,
	}
}

// Run switches the terminal to raw mode and renders frames until the context
// is done or Escape is pressed. The terminal state is restored on return.
func (t *TerminalFrontend) Run(ctx context.Context, host Host) error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: stdin is not a terminal", ErrUnavailable)
	}
	t.checkSize()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	input, err := startInput(t.in)
	if err != nil {
		return fmt.Errorf("starting terminal input: %w", err)
	}
	defer input.Close()

	_, _ = io.WriteString(t.out, clearScreen+hideCursor)
	defer func() { _, _ = io.WriteString(t.out, showCursor+"\r\n") }()

	keys := newKeyHolder(host)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case data := <-input.Data():
			if quit := keys.handleInput(data, time.Now()); quit {
				return ErrQuit
			}

		case now := <-ticker.C:
			keys.releaseExpired(now)
			if err := t.renderFrame(host); err != nil {
				return err
			}
		}
	}
}

func (t *TerminalFrontend) renderFrame(host Host) error {
	snapshot := host.Snapshot()
	if _, err := io.WriteString(t.out, cursorHome); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if err := renderText(t.out, &snapshot.Framebuffer, "\r\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(t.out, statusLine(snapshot)+"\x1b[K\r\n"); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	return nil
}

// checkSize warns when the terminal is too small for a full frame.
func (t *TerminalFrontend) checkSize() {
	width, height, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return
	}
	needHeight := chip8.DisplayHeight/2 + 1
	if width < chip8.DisplayWidth || height < needHeight {
		t.logger.Warn("Terminal is smaller than the display",
			log.Int("width", width),
			log.Int("height", height),
			log.Int("required_width", chip8.DisplayWidth),
			log.Int("required_height", needHeight))
	}
}

// keyHolder emulates key releases for terminal input.
type keyHolder struct {
	host     Host
	deadline [chip8.KeyCount]time.Time
}

func newKeyHolder(host Host) *keyHolder {
	return &keyHolder{host: host}
}

// handleInput presses the keys of an input chunk and returns whether the
// user asked to quit. Escape sequences of special keys are ignored.
func (k *keyHolder) handleInput(data []byte, now time.Time) bool {
	if len(data) == 0 {
		return false
	}
	switch {
	case data[0] == keyCtrlC:
		return true
	case data[0] == keyEscape:
		return len(data) == 1
	}

	for _, b := range data {
		if b == keyCtrlC {
			return true
		}
		key, ok := KeyForRune(rune(b))
		if !ok {
			continue
		}
		if k.deadline[key].IsZero() {
			_ = k.host.SetKey(key, true)
		}
		k.deadline[key] = now.Add(keyHoldDuration)
	}
	return false
}

// releaseExpired releases all keys without input within the hold duration.
func (k *keyHolder) releaseExpired(now time.Time) {
	for key, deadline := range k.deadline {
		if deadline.IsZero() || now.Before(deadline) {
			continue
		}
		k.deadline[key] = time.Time{}
		_ = k.host.SetKey(uint8(key), false)
	}
}
