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

// Package ppu implements the pixel processing unit of the console.
//
// The PPU draws the screen one scanline at a time. Every scanline lasts 114
// machine cycles, divided between three modes:
//
//	mode 2 (OAM scan)   20 cycles
//	mode 3 (transfer)   43 cycles
//	mode 0 (HBlank)     51 cycles
//
// There are 154 scanlines per frame. Lines 144 to 153 are in mode 1
// (VBlank). A complete frame therefore lasts 17556 machine cycles.
//
// The emulation renders an entire scanline when mode 3 is entered, using
// the register values at that moment. The completed frame is made available
// through the FrameBuffer() function when VBlank starts.
//
// When the LCD is turned off (LCDC bit 7) the PPU stops, LY is held at zero
// and the frame is blanked. Turning the LCD back on restarts the PPU at the
// beginning of a frame. ScreenTurnedOn() reports that this has happened.
package ppu
