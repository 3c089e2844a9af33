package frontend

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/emulator"
)

// RenderText writes the framebuffer using half block characters, every text
// row shows two pixel rows.
func RenderText(w io.Writer, fb *chip8.Framebuffer) error {
	return renderText(w, fb, "\n")
}

func renderText(w io.Writer, fb *chip8.Framebuffer, lineEnd string) error {
	var sb strings.Builder
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			top := fb.Pixel(x, y)
			bottom := fb.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(lineEnd)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// statusLine returns a one line summary of the machine state.
func statusLine(snapshot emulator.Snapshot) string {
	line := fmt.Sprintf("PC $%03X  DT %02X  ST %02X", snapshot.PC, snapshot.DelayTimer, snapshot.SoundTimer)
	if snapshot.SoundActive {
		line += "  BEEP"
	}
	if snapshot.Err != nil {
		line += "  halted: " + snapshot.Err.Error()
	}
	return line
}
