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

// Package chipbus defines the view of the memory-mapped registers seen by
// the chips (timer, DMA, video, audio, etc.) of the console.
//
// The memory bus holds the only copy of every memory-mapped register. A
// write by the CPU stores the value and raises a flag for that register. The
// flag stays raised until the end of the current machine step. A chip
// synchronises its own state with the bus by checking the flags it is
// interested in with ChipHasChanged() and reading the values with
// ChipRead(). A chip updates registers on the bus with ChipWrite(), which
// never raises a flag.
package chipbus

// Memory is the interface the chips use to access the memory-mapped
// registers.
type Memory interface {
	// ChipRead returns the value of the register without any of the
	// adjustments made when the CPU reads it
	ChipRead(reg uint16) uint8

	// ChipWrite sets the value of the register without raising the changed
	// flag or applying the CPU write rules for the register
	ChipWrite(reg uint16, data uint8)

	// ChipHasChanged returns true if the CPU has written to the register
	// since the start of the current machine step
	ChipHasChanged(reg uint16) bool
}
