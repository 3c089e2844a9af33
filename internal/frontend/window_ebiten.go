//go:build !headless

package frontend

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

// WindowAvailable reports whether the window frontend is compiled in.
const WindowAvailable = true

var (
	pixelOn    = [4]byte{0xE0, 0xF0, 0xD0, 0xFF}
	pixelOff   = [4]byte{0x10, 0x18, 0x10, 0xFF}
	overlayRed = color.RGBA{R: 0xFF, G: 0x50, B: 0x50, A: 0xFF}
	soundColor = color.RGBA{R: 0x60, G: 0xC0, B: 0xFF, A: 0xFF}
)

// windowKeys maps ebiten keys to keypad keys, matching the terminal layout.
var windowKeys = [chip8.KeyCount]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.KeyDigit1, 0x2: ebiten.KeyDigit2, 0x3: ebiten.KeyDigit3,
	0x4: ebiten.KeyQ, 0x5: ebiten.KeyW, 0x6: ebiten.KeyE,
	0x7: ebiten.KeyA, 0x8: ebiten.KeyS, 0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ, 0xB: ebiten.KeyC, 0xC: ebiten.KeyDigit4,
	0xD: ebiten.KeyR, 0xE: ebiten.KeyF, 0xF: ebiten.KeyV,
}

// WindowFrontend renders the display into a scaled desktop window.
type WindowFrontend struct {
	logger *log.Logger
	scale  int
}

// NewWindow returns a window frontend with the given pixel scale.
func NewWindow(logger *log.Logger, scale int) *WindowFrontend {
	if scale < 1 {
		scale = 1
	}
	return &WindowFrontend{
		logger: logger,
		scale:  scale,
	}
}

// Run opens the window and blocks until it is closed, Escape is pressed or the
// context is done. It has to be called from the main goroutine.
func (w *WindowFrontend) Run(ctx context.Context, host Host) error {
	ebiten.SetWindowSize(chip8.DisplayWidth*w.scale, chip8.DisplayHeight*w.scale)
	ebiten.SetWindowTitle("retrochip8")
	ebiten.SetRunnableOnUnfocused(true)

	g := &game{
		ctx:     ctx,
		host:    host,
		scale:   w.scale,
		pixels:  make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
		pressed: [chip8.KeyCount]bool{},
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrQuit
}

// game implements ebiten.Game.
type game struct {
	ctx     context.Context
	host    Host
	scale   int
	image   *ebiten.Image
	pixels  []byte
	pressed [chip8.KeyCount]bool
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, ebitenKey := range windowKeys {
		pressed := ebiten.IsKeyPressed(ebitenKey)
		if pressed == g.pressed[key] {
			continue
		}
		g.pressed[key] = pressed
		if err := g.host.SetKey(uint8(key), pressed); err != nil {
			return fmt.Errorf("updating keypad: %w", err)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}

	snapshot := g.host.Snapshot()
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			offset := 4 * (y*chip8.DisplayWidth + x)
			if snapshot.Framebuffer[y][x] {
				copy(g.pixels[offset:], pixelOn[:])
			} else {
				copy(g.pixels[offset:], pixelOff[:])
			}
		}
	}
	g.image.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.image, op)

	face := basicfont.Face7x13
	if snapshot.SoundActive {
		text.Draw(screen, "BEEP", face, chip8.DisplayWidth*g.scale-32, 14, soundColor)
	}
	if snapshot.Err != nil {
		text.Draw(screen, "halted: "+snapshot.Err.Error(), face, 4, chip8.DisplayHeight*g.scale-6, overlayRed)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth * g.scale, chip8.DisplayHeight * g.scale
}
