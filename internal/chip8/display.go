package chip8

import (
	"strings"
)

// Framebuffer is the 64x32 monochrome display, indexed by row then column.
type Framebuffer [DisplayHeight][DisplayWidth]bool

// Pixel returns whether the pixel at x, y is set. Coordinates outside of the
// display are reported as unset.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= DisplayWidth || y >= DisplayHeight {
		return false
	}
	return f[y][x]
}

// Lit returns the number of set pixels.
func (f *Framebuffer) Lit() int {
	var count int
	for y := range f {
		for _, set := range f[y] {
			if set {
				count++
			}
		}
	}
	return count
}

// String renders the display with one character per pixel.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range f {
		for _, set := range f[y] {
			if set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *Framebuffer) clear() {
	*f = Framebuffer{}
}

// drawSprite XORs the sprite rows onto the display with the origin wrapped
// into the display and pixels past the right or bottom edge clipped.
// It returns whether any set pixel was turned off.
func (f *Framebuffer) drawSprite(originX, originY byte, sprite []byte) bool {
	x0 := int(originX) % DisplayWidth
	y0 := int(originY) % DisplayHeight

	var collision bool
	for row, bits := range sprite {
		y := y0 + row
		if y >= DisplayHeight {
			break
		}
		for col := range 8 {
			x := x0 + col
			if x >= DisplayWidth {
				break
			}
			if bits&(0x80>>col) == 0 {
				continue
			}
			if f[y][x] {
				collision = true
			}
			f[y][x] = !f[y][x]
		}
	}
	return collision
}
