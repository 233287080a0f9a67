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

// Package sdlwindow presents the emulation in a window created with SDL. The
// keyboard is read with the SDL event queue.
//
// SDL requires that the window is serviced from the main thread of the
// program. The Run() function must be called from the main goroutine with
// the OS thread locked.
package sdlwindow

import (
	"encoding/binary"
	"fmt"

	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/limiter"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// Window implements the gui.GUI interface.
type Window struct {
	title string
	hooks gui.Hooks
	keys  gui.Keyboard

	// nil if the frame rate is not capped
	lim *limiter.Limiter

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	frames int
}

var keys = map[sdl.Keycode]gui.Key{
	sdl.K_UP:     gui.KeyUp,
	sdl.K_DOWN:   gui.KeyDown,
	sdl.K_LEFT:   gui.KeyLeft,
	sdl.K_RIGHT:  gui.KeyRight,
	sdl.K_x:      gui.KeyX,
	sdl.K_z:      gui.KeyZ,
	sdl.K_s:      gui.KeyS,
	sdl.K_a:      gui.KeyA,
	sdl.K_ESCAPE: gui.KeyEscape,
	sdl.K_F12:    gui.KeyF12,
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(title string, scale int, fpsCap bool, hooks gui.Hooks) (*Window, error) {
	if scale < 1 {
		return nil, fmt.Errorf("sdlwindow: invalid scale (%d)", scale)
	}

	win := &Window{title: title, hooks: hooks}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	win.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(ppu.Width*scale), int32(ppu.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	// the texture is the size of the LCD. it is scaled to fit the window when
	// it is copied to the renderer
	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING), ppu.Width, ppu.Height)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	if fpsCap {
		win.lim, err = limiter.NewLimiter(limiter.RefreshRate)
		if err != nil {
			win.Destroy()
			return nil, fmt.Errorf("sdlwindow: %w", err)
		}
	}

	return win, nil
}

// Destroy implements the gui.GUI interface.
func (win *Window) Destroy() {
	if win.lim != nil {
		win.lim.Stop()
	}
	if win.texture != nil {
		_ = win.texture.Destroy()
	}
	if win.renderer != nil {
		_ = win.renderer.Destroy()
	}
	if win.window != nil {
		_ = win.window.Destroy()
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}

// Provide implements the joypad.Provider interface.
func (win *Window) Provide(s *joypad.State) {
	win.keys.Provide(s)
}

// service the SDL event queue. returns true if a screenshot was requested
func (win *Window) service() bool {
	var screenshot bool

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.keys.RequestQuit()
		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if k, ok := keys[ev.Keysym.Sym]; ok {
				if win.keys.KeyEvent(k, ev.Type == sdl.KEYDOWN) {
					screenshot = true
				}
			}
		case *sdl.WindowEvent:
			// release everything when the window loses focus. key up events
			// will not be received
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				win.keys.ReleaseAll()
			}
		}
	}

	return screenshot
}

// Run implements the gui.GUI interface.
func (win *Window) Run(emu gui.Emulation) error {
	for {
		screenshot := win.service()
		if win.keys.Quit() {
			return nil
		}

		fb, err := emu.RunFrame()
		if err != nil {
			return err
		}

		cont, err := win.hooks.Frame(fb)
		if err != nil {
			return gui.Finish(err)
		}
		if !cont {
			return nil
		}

		if screenshot {
			win.hooks.Screenshot(fb)
		}

		err = win.present(fb)
		if err != nil {
			return err
		}

		if win.lim != nil {
			win.lim.Wait()
		}
	}
}

func (win *Window) present(fb *ppu.FrameBuffer) error {
	pixels, pitch, err := win.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdlwindow: %w", err)
	}

	for y := range ppu.Height {
		row := pixels[y*pitch:]
		for x := range ppu.Width {
			binary.NativeEndian.PutUint32(row[x*pixelDepth:], fb.Pixel(x, y))
		}
	}
	win.texture.Unlock()

	err = win.renderer.Clear()
	if err != nil {
		return fmt.Errorf("sdlwindow: %w", err)
	}
	err = win.renderer.Copy(win.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdlwindow: %w", err)
	}
	win.renderer.Present()

	win.frames++
	if win.lim != nil && win.frames%60 == 0 {
		win.window.SetTitle(fmt.Sprintf("%s (%.1f fps)", win.title, win.lim.Actual()))
	}

	return nil
}
