package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"CLS", 0x00E0, "cls"},
		{"RET", 0x00EE, "ret"},
		{"SYS", 0x0123, "sys $123"},
		{"JP addr", 0x1234, "jp $234"},
		{"JP V0, addr", 0xB234, "jp V0, $234"},
		{"CALL addr", 0x2300, "call $300"},
		{"SE Vx, byte", 0x3234, "se V2, $34"},
		{"SNE Vx, byte", 0x4234, "sne V2, $34"},
		{"SE Vx, Vy", 0x5230, "se V2, V3"},
		{"SNE Vx, Vy", 0x9230, "sne V2, V3"},
		{"LD Vx, byte", 0x6A3C, "ld VA, $3C"},
		{"ADD Vx, byte", 0x7A05, "add VA, $05"},
		{"LD Vx, Vy", 0x8230, "ld V2, V3"},
		{"OR", 0x8231, "or V2, V3"},
		{"AND", 0x8232, "and V2, V3"},
		{"XOR", 0x8233, "xor V2, V3"},
		{"ADD Vx, Vy", 0x8234, "add V2, V3"},
		{"SUB", 0x8235, "sub V2, V3"},
		{"SHR", 0x8236, "shr V2"},
		{"SUBN", 0x8237, "subn V2, V3"},
		{"SHL", 0x823E, "shl V2"},
		{"LD I, addr", 0xA234, "ld I, $234"},
		{"RND", 0xC234, "rnd V2, $34"},
		{"DRW", 0xD235, "drw V2, V3, $5"},
		{"SKP", 0xE29E, "skp V2"},
		{"SKNP", 0xE2A1, "sknp V2"},
		{"LD Vx, DT", 0xF207, "ld V2, DT"},
		{"LD Vx, K", 0xF20A, "ld V2, K"},
		{"LD DT, Vx", 0xF215, "ld DT, V2"},
		{"LD ST, Vx", 0xF218, "ld ST, V2"},
		{"ADD I, Vx", 0xF21E, "add I, V2"},
		{"LD F, Vx", 0xF229, "ld F, V2"},
		{"LD B, Vx", 0xF233, "ld B, V2"},
		{"LD [I], Vx", 0xF255, "ld [I], V2"},
		{"LD Vx, [I]", 0xF265, "ld V2, [I]"},
		{"unknown", 0xFFFF, "dw $FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).String())
		})
	}
}
