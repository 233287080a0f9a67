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

// Package gui defines the types shared by the presentation layers of the
// emulator. Each sub-package implements the GUI interface using a different
// technology.
//
// A GUI owns the main loop of the program. It asks the Emulation for a frame
// at the rate of the hardware (or as fast as possible when the frame rate is
// not capped), presents it and collects input for the joypad.
package gui

import (
	"errors"

	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/ppu"
)

// Emulation is the part of the emulation driven by a GUI.
type Emulation interface {
	RunFrame() (*ppu.FrameBuffer, error)
}

// GUI implementations present the emulation to the user. The GUI is also
// the source of joypad input.
type GUI interface {
	joypad.Provider

	// Run the emulation until the user quits, the OnFrame hook asks to stop
	// or an error occurs. Ending the emulation is not an error.
	Run(emu Emulation) error

	// Destroy releases the resources of the GUI.
	Destroy()
}

// Hooks are called by the GUI at specific points. All fields can be nil.
type Hooks struct {
	// called after every frame. returning false ends the emulation
	OnFrame func(fb *ppu.FrameBuffer) (bool, error)

	// called when the user presses the screenshot key
	OnScreenshot func(fb *ppu.FrameBuffer)
}

// Frame calls the OnFrame hook if it is present.
func (h Hooks) Frame(fb *ppu.FrameBuffer) (bool, error) {
	if h.OnFrame == nil {
		return true, nil
	}
	return h.OnFrame(fb)
}

// Screenshot calls the OnScreenshot hook if it is present.
func (h Hooks) Screenshot(fb *ppu.FrameBuffer) {
	if h.OnScreenshot != nil {
		h.OnScreenshot(fb)
	}
}

// ErrQuit can be returned by an OnFrame hook to end the emulation. It is not
// returned by Run().
var ErrQuit = errors.New("quit")

// Finish converts the error that ended the main loop of a GUI to the error
// returned by Run().
func Finish(err error) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
