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

package macro

import (
	"context"
	"fmt"
	"os"

	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/logger"
	lua "github.com/yuin/gopher-lua"
)

// Macro is a Lua script that controls the joypad. It implements the
// joypad.Provider interface. Buttons pressed by the script are added to the
// buttons pressed by any other provider.
type Macro struct {
	perm logger.Permission
	name string

	L      *lua.LState
	co     *lua.LState
	cancel context.CancelFunc
	fn     *lua.LFunction

	state    joypad.State
	wait     int
	frame    int
	finished bool
	quit     bool

	// called by the screenshot() function. screenshots are ignored if the
	// field is nil
	Screenshot func(name string) error
}

// NewMacro loads the script from the named file.
func NewMacro(perm logger.Permission, filename string) (*Macro, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}
	return NewMacroFromString(perm, filename, string(data))
}

// NewMacroFromString creates a Macro from the script. The name is used in
// error messages and log entries.
func NewMacroFromString(perm logger.Permission, name string, script string) (*Macro, error) {
	mcr := &Macro{
		perm: perm,
		name: name,
		L:    lua.NewState(lua.Options{SkipOpenLibs: true}),
	}

	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		err := mcr.L.CallByParam(lua.P{
			Fn:      mcr.L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			mcr.L.Close()
			return nil, fmt.Errorf("macro: %w", err)
		}
	}

	funcs := map[string]lua.LGFunction{
		"press":      mcr.press,
		"release":    mcr.release,
		"releaseall": mcr.releaseAll,
		"wait":       mcr.waitFrames,
		"frame":      mcr.frameNum,
		"screenshot": mcr.screenshot,
		"log":        mcr.log,
		"quit":       mcr.requestQuit,
	}
	for n, f := range funcs {
		mcr.L.SetGlobal(n, mcr.L.NewFunction(f))
	}

	var err error
	mcr.fn, err = mcr.L.LoadString(script)
	if err != nil {
		mcr.L.Close()
		return nil, fmt.Errorf("macro: %s: %w", name, err)
	}

	mcr.co, mcr.cancel = mcr.L.NewThread()

	return mcr, nil
}

func (mcr *Macro) String() string {
	return fmt.Sprintf("%s [frame %d]", mcr.name, mcr.frame)
}

// Close the Lua state.
func (mcr *Macro) Close() {
	if mcr.cancel != nil {
		mcr.cancel()
	}
	mcr.L.Close()
}

// Provide implements the joypad.Provider interface.
func (mcr *Macro) Provide(s *joypad.State) {
	for b := joypad.Right; b <= joypad.Start; b++ {
		if mcr.state.IsPressed(b) {
			s.Press(b)
		}
	}
}

// Finished returns true if the script has run to completion or stopped with
// an error.
func (mcr *Macro) Finished() bool {
	return mcr.finished
}

// Quit returns true if the script has called the quit() function.
func (mcr *Macro) Quit() bool {
	return mcr.quit
}

// Frame should be called once per frame. The script is resumed if it is not
// waiting.
func (mcr *Macro) Frame() error {
	mcr.frame++

	if mcr.finished {
		return nil
	}

	if mcr.wait > 0 {
		mcr.wait--
		if mcr.wait > 0 {
			return nil
		}
	}

	st, err, _ := mcr.L.Resume(mcr.co, mcr.fn)
	switch st {
	case lua.ResumeError:
		mcr.finished = true
		return fmt.Errorf("macro: %s: %w", mcr.name, err)
	case lua.ResumeOK:
		mcr.finished = true
		logger.Logf(mcr.perm, "macro", "%s: finished on frame %d", mcr.name, mcr.frame)
	}

	return nil
}

func (mcr *Macro) button(L *lua.LState) joypad.Button {
	n := L.CheckString(1)
	b, ok := joypad.ButtonByName(n)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown button (%s)", n))
	}
	return b
}

func (mcr *Macro) press(L *lua.LState) int {
	mcr.state.Press(mcr.button(L))
	return 0
}

func (mcr *Macro) release(L *lua.LState) int {
	mcr.state.Release(mcr.button(L))
	return 0
}

func (mcr *Macro) releaseAll(_ *lua.LState) int {
	mcr.state.ReleaseAll()
	return 0
}

func (mcr *Macro) waitFrames(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 1 {
		L.ArgError(1, "frames must be at least one")
	}
	mcr.wait = n
	return L.Yield()
}

func (mcr *Macro) frameNum(L *lua.LState) int {
	L.Push(lua.LNumber(mcr.frame))
	return 1
}

func (mcr *Macro) screenshot(L *lua.LState) int {
	n := L.OptString(1, "")
	if mcr.Screenshot == nil {
		return 0
	}
	if err := mcr.Screenshot(n); err != nil {
		logger.Logf(mcr.perm, "macro", "%s: %v", mcr.name, err)
	}
	return 0
}

func (mcr *Macro) log(L *lua.LState) int {
	logger.Log(mcr.perm, "macro", L.CheckString(1))
	return 0
}

func (mcr *Macro) requestQuit(_ *lua.LState) int {
	mcr.quit = true
	return 0
}
