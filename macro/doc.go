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

// Package macro implements an input system driven by a Lua script. The
// script runs alongside the emulation and is resumed once per frame. It is
// useful for automating the collation of screenshots in a repeatable manner
// and for driving test ROMs that require input.
//
// The following functions are available to the script:
//
//	press(button)       hold a button down. buttons are named as they are on the
//	                    console: up, down, left, right, a, b, select, start
//	release(button)     release a button
//	releaseall()        release all buttons
//	wait([frames])      pause the script for a number of frames. the default is one
//	frame()             returns the current frame number
//	screenshot([name])  save a screenshot. the name is optional
//	log(message)        add an entry to the log
//	quit()              end the emulation after the current frame
//
// For example, to press start after two seconds and take a screenshot a
// second later:
//
//	wait(120)
//	press("start")
//	wait(5)
//	release("start")
//	wait(60)
//	screenshot("title")
//
// Only the base, table, string and math Lua libraries are opened. Errors in
// the script end the script and are returned by Frame().
package macro
