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

package gui

import (
	"github.com/gopherboy/gopherboy/hardware/joypad"
)

// Key is a keyboard key independent of the GUI technology.
type Key int

// List of keys used by the emulator.
const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyX
	KeyZ
	KeyS
	KeyA
	KeyEscape
	KeyF12
)

// KeyMap maps keys to joypad buttons.
var KeyMap = map[Key]joypad.Button{
	KeyRight: joypad.Right,
	KeyLeft:  joypad.Left,
	KeyUp:    joypad.Up,
	KeyDown:  joypad.Down,
	KeyX:     joypad.A,
	KeyZ:     joypad.B,
	KeyS:     joypad.Start,
	KeyA:     joypad.Select,
}

// Keyboard converts key events to the state of the joypad. It implements the
// joypad.Provider interface. It is not safe for concurrent use.
type Keyboard struct {
	state joypad.State
	quit  bool
}

// KeyEvent updates the keyboard with a key being pressed or released. Returns
// true if the key is the screenshot key being pressed.
func (kb *Keyboard) KeyEvent(k Key, pressed bool) bool {
	if b, ok := KeyMap[k]; ok {
		kb.state.Set(b, pressed)
		return false
	}

	switch k {
	case KeyEscape:
		if pressed {
			kb.quit = true
		}
	case KeyF12:
		return pressed
	}

	return false
}

// Quit returns true if the quit key has been pressed.
func (kb *Keyboard) Quit() bool {
	return kb.quit
}

// RequestQuit has the same effect as the quit key.
func (kb *Keyboard) RequestQuit() {
	kb.quit = true
}

// ReleaseAll releases every button.
func (kb *Keyboard) ReleaseAll() {
	kb.state.ReleaseAll()
}

// Provide implements the joypad.Provider interface.
func (kb *Keyboard) Provide(s *joypad.State) {
	*s = kb.state
}
