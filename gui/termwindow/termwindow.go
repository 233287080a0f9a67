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

// Package termwindow presents the emulation in a terminal. Each character
// cell shows two pixels, one above the other, using the upper half block
// character with 24-bit foreground and background colours. The terminal must
// support 24-bit colour.
//
// The frame is scaled to fit the terminal. Input is read from the controlling
// terminal in cbreak mode. Terminals do not report key releases so a key
// press holds the button for a short period.
package termwindow

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/limiter"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// the number of frames a button is held for after a key press
const holdFrames = 8

// how often the terminal geometry is checked
const geometryFrames = 30

// Window implements the gui.GUI interface.
type Window struct {
	perm  logger.Permission
	hooks gui.Hooks
	keys  gui.Keyboard

	tty    *term.Term
	output *os.File
	bufout *bufio.Writer
	render bytes.Buffer

	// key presses read by the input goroutine
	input chan gui.Key
	done  chan struct{}

	// frame number at which each held key is released
	held map[gui.Key]int

	lim    *limiter.Limiter
	frames int
	cols   int
	rows   int
}

// NewWindow is the preferred method of initialisation for the Window type.
// The output must be a terminal.
func NewWindow(perm logger.Permission, output *os.File, fpsCap bool, hooks gui.Hooks) (*Window, error) {
	if !xterm.IsTerminal(int(output.Fd())) {
		return nil, fmt.Errorf("termwindow: output is not a terminal")
	}

	tty, err := term.Open("/dev/tty", term.CBreakMode, term.ReadTimeout(50*time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("termwindow: %w", err)
	}

	win := &Window{
		perm:   perm,
		hooks:  hooks,
		tty:    tty,
		output: output,
		bufout: bufio.NewWriterSize(output, 256*1024),
		input:  make(chan gui.Key, 64),
		done:   make(chan struct{}),
		held:   make(map[gui.Key]int),
	}

	if fpsCap {
		win.lim, err = limiter.NewLimiter(limiter.RefreshRate)
		if err != nil {
			win.Destroy()
			return nil, fmt.Errorf("termwindow: %w", err)
		}
	}

	win.updateGeometry()

	// hide cursor and clear screen
	win.bufout.WriteString("\x1b[?25l\x1b[2J")

	go win.readInput()

	return win, nil
}

// Destroy implements the gui.GUI interface. The terminal is restored to its
// original state.
func (win *Window) Destroy() {
	select {
	case <-win.done:
	default:
		close(win.done)
	}

	if win.lim != nil {
		win.lim.Stop()
	}

	// reset colours, show cursor and move below the image
	win.bufout.WriteString("\x1b[0m\x1b[?25h\n")
	_ = win.bufout.Flush()

	if err := win.tty.Restore(); err != nil {
		logger.Logf(win.perm, "termwindow", "%v", err)
	}
	if err := win.tty.Close(); err != nil {
		logger.Logf(win.perm, "termwindow", "%v", err)
	}
}

// Provide implements the joypad.Provider interface.
func (win *Window) Provide(s *joypad.State) {
	win.keys.Provide(s)
}

func (win *Window) readInput() {
	b := make([]byte, 16)
	for {
		select {
		case <-win.done:
			return
		default:
		}

		n, err := win.tty.Read(b)
		if err != nil && err != io.EOF {
			logger.Logf(win.perm, "termwindow", "input: %v", err)
			return
		}

		for _, k := range parseKeys(b[:n]) {
			select {
			case win.input <- k:
			default:
			}
		}
	}
}

func (win *Window) updateGeometry() {
	cols, rows, err := xterm.GetSize(int(win.output.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}
	win.cols, win.rows = fit(cols, rows-1)
}

// service the key presses. returns true if a screenshot was requested
func (win *Window) service() bool {
	var screenshot bool

	for {
		select {
		case k := <-win.input:
			if win.keys.KeyEvent(k, true) {
				screenshot = true
			}
			win.held[k] = win.frames + holdFrames
			continue
		default:
		}
		break
	}

	for k, f := range win.held {
		if win.frames >= f {
			win.keys.KeyEvent(k, false)
			delete(win.held, k)
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
		win.frames++

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

		if win.frames%geometryFrames == 0 {
			win.updateGeometry()
		}

		win.render.Reset()
		win.render.WriteString("\x1b[H")
		render(&win.render, fb, win.cols, win.rows)

		_, err = win.bufout.Write(win.render.Bytes())
		if err == nil {
			err = win.bufout.Flush()
		}
		if err != nil {
			return fmt.Errorf("termwindow: %w", err)
		}

		if win.lim != nil {
			win.lim.Wait()
		}
	}
}
