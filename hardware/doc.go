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

// Package hardware is the base package for the Game Boy emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The GameBoy type is the root of the emulation and contains external
// references to all the sub-components of the machine.
//
// The emulation advances one instruction at a time with the Step() function.
// The number of machine cycles taken by the instruction is used to advance
// the timer, serial port, DMA engine and video unit. Interrupt dispatch
// consumes more cycles and the same chips are advanced again by that
// amount. Finally the audio unit is advanced by the total.
//
// RunFrame() calls Step() until a frame's worth of cycles has passed and
// returns the most recently completed frame.
//
// The components communicate only through the memory bus. A CPU write to a
// memory-mapped register is noted by the bus and each chip reads the
// registers it is interested in when it is synchronised. Synchronisation
// happens at fixed points in every step.
package hardware
