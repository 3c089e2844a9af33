// Package frontend contains the host adapters that display the machine and
// translate host input into keypad state.
package frontend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/retroenv/retrochip8/internal/emulator"
)

// Frontend names.
const (
	Auto     = "auto"
	Terminal = "terminal"
	Window   = "window"
	Headless = "headless"
)

// Names lists all selectable frontend names.
var Names = []string{Auto, Terminal, Window, Headless}

var (
	// ErrQuit is returned when the user asked to quit.
	ErrQuit = errors.New("quit requested")
	// ErrUnavailable is returned by frontends that can not run in the current
	// environment or build.
	ErrUnavailable = errors.New("frontend not available")
)

// Host is the emulator surface used by a frontend.
type Host interface {
	Snapshot() emulator.Snapshot
	SetKey(key uint8, pressed bool) error
}

// Frontend displays the machine until the context is done or the user quits.
type Frontend interface {
	Run(ctx context.Context, host Host) error
}

// keyLayout maps host keyboard characters to keypad keys 0-F, the physical
// 4x4 block 1234/qwer/asdf/zxcv covers the CHIP-8 keypad.
var keyLayout = map[rune]uint8{
	'x': 0x0,
	'1': 0x1, '2': 0x2, '3': 0x3,
	'q': 0x4, 'w': 0x5, 'e': 0x6,
	'a': 0x7, 's': 0x8, 'd': 0x9,
	'z': 0xA, 'c': 0xB, '4': 0xC,
	'r': 0xD, 'f': 0xE, 'v': 0xF,
}

// KeyForRune returns the keypad key for a host keyboard character.
func KeyForRune(r rune) (uint8, bool) {
	key, ok := keyLayout[unicode.ToLower(r)]
	return key, ok
}

// Normalize returns the canonical frontend name or an error for unknown names.
func Normalize(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Auto, nil
	}
	if !slices.Contains(Names, name) {
		return "", fmt.Errorf("unsupported frontend '%s', valid options: %s",
			name, strings.Join(Names, ", "))
	}
	return name, nil
}
