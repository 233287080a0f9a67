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

package gui_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/test"
)

func TestKeyboard(t *testing.T) {
	var kb gui.Keyboard
	var _ joypad.Provider = &kb

	test.ExpectFailure(t, kb.KeyEvent(gui.KeyX, true))
	test.ExpectFailure(t, kb.KeyEvent(gui.KeyUp, true))
	test.ExpectFailure(t, kb.KeyEvent(gui.KeyS, true))

	var s joypad.State
	kb.Provide(&s)
	test.ExpectEquality(t, s.String(), "Up+A+Start")

	kb.KeyEvent(gui.KeyUp, false)
	kb.Provide(&s)
	test.ExpectEquality(t, s.String(), "A+Start")

	kb.ReleaseAll()
	kb.Provide(&s)
	test.ExpectEquality(t, s.String(), "none")

	test.ExpectSuccess(t, kb.KeyEvent(gui.KeyF12, true))
	test.ExpectFailure(t, kb.KeyEvent(gui.KeyF12, false))

	test.ExpectFailure(t, kb.Quit())
	kb.KeyEvent(gui.KeyEscape, true)
	test.ExpectSuccess(t, kb.Quit())
}

func TestHooks(t *testing.T) {
	var h gui.Hooks
	cont, err := h.Frame(nil)
	test.ExpectSuccess(t, cont)
	test.ExpectSuccess(t, err)
	h.Screenshot(nil)

	var shots int
	h = gui.Hooks{
		OnFrame: func(_ *ppu.FrameBuffer) (bool, error) {
			return false, gui.ErrQuit
		},
		OnScreenshot: func(_ *ppu.FrameBuffer) {
			shots++
		},
	}
	cont, err = h.Frame(nil)
	test.ExpectFailure(t, cont)
	test.ExpectSuccess(t, errors.Is(err, gui.ErrQuit))
	h.Screenshot(nil)
	test.ExpectEquality(t, shots, 1)

	test.ExpectSuccess(t, gui.Finish(fmt.Errorf("macro: %w", gui.ErrQuit)))
	test.ExpectFailure(t, gui.Finish(errors.New("failure")))
	test.ExpectSuccess(t, gui.Finish(nil))
}
