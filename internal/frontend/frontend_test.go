package frontend

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fakeHost struct {
	mu       sync.Mutex
	snapshot emulator.Snapshot
	keys     [chip8.KeyCount]bool
	events   int
}

func (h *fakeHost) Snapshot() emulator.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

func (h *fakeHost) SetKey(key uint8, pressed bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if key >= chip8.KeyCount {
		return chip8.ErrInvalidKey
	}
	h.keys[key] = pressed
	h.events++
	return nil
}

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r   rune
		key uint8
		ok  bool
	}{
		{'x', 0x0, true},
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'Q', 0x4, true},
		{'v', 0xF, true},
		{'p', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			key, ok := KeyForRune(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestKeyLayout_CoversKeypad(t *testing.T) {
	seen := make(map[uint8]bool)
	for _, key := range keyLayout {
		seen[key] = true
	}
	assert.Len(t, seen, chip8.KeyCount)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty selects auto", "", Auto, false},
		{"mixed case", " Terminal ", Terminal, false},
		{"window", "window", Window, false},
		{"headless", "headless", Headless, false},
		{"unknown", "sdl", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported frontend")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderText(t *testing.T) {
	var fb chip8.Framebuffer
	fb[0][0] = true
	fb[0][1] = true
	fb[1][1] = true
	fb[1][2] = true

	var buf bytes.Buffer
	assert.NoError(t, RenderText(&buf, &fb))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, chip8.DisplayHeight/2)
	assert.True(t, strings.HasPrefix(lines[0], "▀█▄ "))
	assert.Equal(t, chip8.DisplayWidth, len([]rune(lines[0])))
	assert.Equal(t, strings.Repeat(" ", chip8.DisplayWidth), lines[1])
}

func TestStatusLine(t *testing.T) {
	line := statusLine(emulator.Snapshot{
		PC:          0x2A4,
		DelayTimer:  0x10,
		SoundTimer:  0x02,
		SoundActive: true,
		Err:         chip8.ErrStackOverflow,
	})
	assert.Equal(t, "PC $2A4  DT 10  ST 02  BEEP  halted: stack overflow", line)
}

func TestKeyHolder(t *testing.T) {
	host := &fakeHost{}
	keys := newKeyHolder(host)
	now := time.Now()

	assert.False(t, keys.handleInput([]byte("wp"), now))
	assert.True(t, host.keys[0x5])
	assert.Equal(t, 1, host.events)

	// repeated input extends the hold without new events
	assert.False(t, keys.handleInput([]byte("w"), now.Add(100*time.Millisecond)))
	assert.Equal(t, 1, host.events)

	keys.releaseExpired(now.Add(200 * time.Millisecond))
	assert.True(t, host.keys[0x5])

	keys.releaseExpired(now.Add(300 * time.Millisecond))
	assert.False(t, host.keys[0x5])
	assert.Equal(t, 2, host.events)
}

func TestKeyHolder_Quit(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		quit  bool
	}{
		{"escape", []byte{keyEscape}, true},
		{"ctrl c", []byte{keyCtrlC}, true},
		{"arrow key sequence", []byte{keyEscape, '[', 'A'}, false},
		{"keys", []byte("12"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := newKeyHolder(&fakeHost{})
			assert.Equal(t, tt.quit, keys.handleInput(tt.input, time.Now()))
		})
	}
}

func TestHeadless_Duration(t *testing.T) {
	host := &fakeHost{}
	host.snapshot.Framebuffer[0][0] = true
	host.snapshot.PC = 0x200

	var buf bytes.Buffer
	h := NewHeadless(log.NewTestLogger(t), &buf, 10*time.Millisecond)

	assert.NoError(t, h.Run(context.Background(), host))
	assert.True(t, strings.HasPrefix(buf.String(), "▀"))
	assert.Contains(t, buf.String(), "PC $200")
}

func TestHeadless_Cancelled(t *testing.T) {
	var buf bytes.Buffer
	h := NewHeadless(log.NewTestLogger(t), &buf, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Run(ctx, &fakeHost{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NotEmpty(t, buf.String())
}
