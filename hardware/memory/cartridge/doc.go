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

// Package cartridge implements the cartridge controllers (memory bank
// controllers, or MBCs) of the Game Boy.
//
// A controller maps the cartridge ROM into the two 16KB windows at 0x0000
// and 0x4000 and the external RAM into the 8KB window at 0xa000. Writes to
// the ROM address range are never stored. They set the controller's control
// registers instead.
//
// The set of controllers is small and fixed by the hardware, so the
// Cartridge type is a closed variant selected by the Kind field rather than
// an interface with one implementation per controller. Every operation
// switches on the Kind.
//
// Supported controllers:
//
//	ROM only (with or without RAM)	types 0x00, 0x08, 0x09
//	MBC1				types 0x01 to 0x03
//	MBC3 (with or without RTC)	types 0x0f to 0x13
//	MBC5				types 0x19 to 0x1e
//
// Reads of disabled or missing external RAM, or of an undefined MBC3 RTC
// register, return the value 0xff. Writes to the same are ignored.
package cartridge
