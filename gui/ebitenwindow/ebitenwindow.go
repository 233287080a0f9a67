// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package ebitenwindow presents the emulation with the ebiten game library.
// It is an alternative to the sdlwindow package that does not require the
// SDL libraries to be installed.
//
// Ebiten owns the main loop. The emulation is advanced by one frame in every
// call to Update(), so the frame rate is set with the ebiten TPS value.
package ebitenwindow

import (
	"errors"
	"math"

	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/limiter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window implements the gui.GUI and ebiten.Game interfaces.
type Window struct {
	hooks gui.Hooks
	keys  gui.Keyboard
	emu   gui.Emulation

	// the most recent frame in RGBA format
	pixels []byte
	img    *ebiten.Image
}

var keys = map[ebiten.Key]gui.Key{
	ebiten.KeyArrowUp:    gui.KeyUp,
	ebiten.KeyArrowDown:  gui.KeyDown,
	ebiten.KeyArrowLeft:  gui.KeyLeft,
	ebiten.KeyArrowRight: gui.KeyRight,
	ebiten.KeyX:          gui.KeyX,
	ebiten.KeyZ:          gui.KeyZ,
	ebiten.KeyS:          gui.KeyS,
	ebiten.KeyA:          gui.KeyA,
	ebiten.KeyEscape:     gui.KeyEscape,
	ebiten.KeyF12:        gui.KeyF12,
}

// NewWindow is the preferred method of initialisation for the Window type.
// The window is not opened until Run() is called.
func NewWindow(title string, scale int, fpsCap bool, hooks gui.Hooks) *Window {
	scale = max(scale, 1)

	ebiten.SetWindowSize(ppu.Width*scale, ppu.Height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)

	if fpsCap {
		ebiten.SetTPS(int(math.Round(limiter.RefreshRate)))
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
		ebiten.SetVsyncEnabled(false)
	}

	return &Window{
		hooks:  hooks,
		pixels: make([]byte, ppu.Width*ppu.Height*4),
	}
}

// Destroy implements the gui.GUI interface.
func (win *Window) Destroy() {
	if win.img != nil {
		win.img.Deallocate()
	}
}

// Provide implements the joypad.Provider interface.
func (win *Window) Provide(s *joypad.State) {
	win.keys.Provide(s)
}

// Run implements the gui.GUI interface.
func (win *Window) Run(emu gui.Emulation) error {
	win.emu = emu
	err := ebiten.RunGame(win)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return gui.Finish(err)
}

// Update implements the ebiten.Game interface.
func (win *Window) Update() error {
	var screenshot bool
	for ek, k := range keys {
		switch {
		case inpututil.IsKeyJustPressed(ek):
			if win.keys.KeyEvent(k, true) {
				screenshot = true
			}
		case inpututil.IsKeyJustReleased(ek):
			win.keys.KeyEvent(k, false)
		}
	}

	if win.keys.Quit() || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	fb, err := win.emu.RunFrame()
	if err != nil {
		return err
	}

	cont, err := win.hooks.Frame(fb)
	if err != nil {
		return err
	}
	if !cont {
		return ebiten.Termination
	}

	if screenshot {
		win.hooks.Screenshot(fb)
	}

	for i, c := range fb {
		win.pixels[i*4] = uint8(c >> 16)
		win.pixels[i*4+1] = uint8(c >> 8)
		win.pixels[i*4+2] = uint8(c)
		win.pixels[i*4+3] = uint8(c >> 24)
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (win *Window) Draw(screen *ebiten.Image) {
	if win.img == nil {
		win.img = ebiten.NewImage(ppu.Width, ppu.Height)
	}
	win.img.WritePixels(win.pixels)
	screen.DrawImage(win.img, nil)
}

// Layout implements the ebiten.Game interface. The screen is always the size
// of the LCD and is scaled by ebiten to fit the window.
func (win *Window) Layout(_, _ int) (int, int) {
	return ppu.Width, ppu.Height
}
