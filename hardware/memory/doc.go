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

// Package memory implements the memory bus of the Game Boy. Every address in
// the 64KB address space resolves to exactly one region:
//
//	0x0000 - 0x00ff	boot ROM (while enabled, otherwise cartridge)
//	0x0000 - 0x3fff	cartridge ROM bank 0
//	0x4000 - 0x7fff	cartridge ROM bank n (writes go to the controller)
//	0x8000 - 0x9fff	video RAM
//	0xa000 - 0xbfff	cartridge external RAM
//	0xc000 - 0xdfff	work RAM
//	0xe000 - 0xfdff	echo of work RAM
//	0xfe00 - 0xfe9f	object attribute memory (OAM)
//	0xfea0 - 0xfeff	unusable
//	0xff00 - 0xff7f	memory-mapped registers
//	0xff80 - 0xfffe	high RAM
//	0xffff		interrupt enable register
//
// The Memory type implements both the cpubus.Memory interface, used by the
// CPU, and the chipbus.Memory interface, used by the other chips.
package memory
