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

package memory

import "github.com/gopherboy/gopherboy/hardware/memory/addresses"

// bits that always read as one when the CPU reads a register. unmapped
// registers read as 0xff.
var readMask [addresses.IOEnd - addresses.IO + 1]uint8

func init() {
	for i := range readMask {
		readMask[i] = 0xff
	}

	for reg, m := range map[uint16]uint8{
		addresses.P1: 0xc0, addresses.SB: 0x00, addresses.SC: 0x7e,
		addresses.DIV: 0x00, addresses.TIMA: 0x00, addresses.TMA: 0x00, addresses.TAC: 0xf8,
		addresses.IF: 0xe0,
		addresses.NR10: 0x80, addresses.NR11: 0x3f, addresses.NR12: 0x00, addresses.NR13: 0xff, addresses.NR14: 0xbf,
		addresses.NR21: 0x3f, addresses.NR22: 0x00, addresses.NR23: 0xff, addresses.NR24: 0xbf,
		addresses.NR30: 0x7f, addresses.NR31: 0xff, addresses.NR32: 0x9f, addresses.NR33: 0xff, addresses.NR34: 0xbf,
		addresses.NR41: 0xff, addresses.NR42: 0x00, addresses.NR43: 0x00, addresses.NR44: 0xbf,
		addresses.NR50: 0x00, addresses.NR51: 0x00, addresses.NR52: 0x70,
		addresses.LCDC: 0x00, addresses.STAT: 0x80, addresses.SCY: 0x00, addresses.SCX: 0x00,
		addresses.LY: 0x00, addresses.LYC: 0x00, addresses.DMA: 0x00, addresses.BGP: 0x00,
		addresses.OBP0: 0x00, addresses.OBP1: 0x00, addresses.WY: 0x00, addresses.WX: 0x00,
	} {
		readMask[reg-addresses.IO] = m
	}

	for reg := addresses.WaveRAM; reg <= addresses.WaveRAMEnd; reg++ {
		readMask[reg-addresses.IO] = 0x00
	}
}

// register values at the end of the boot ROM. used when the machine starts
// without a boot ROM.
var postBootRegisters = map[uint16]uint8{
	addresses.P1:   0xcf,
	addresses.SC:   0x7e,
	addresses.DIV:  0xab,
	addresses.TAC:  0xf8,
	addresses.IF:   0x01,
	addresses.NR10: 0x80,
	addresses.NR11: 0xbf,
	addresses.NR12: 0xf3,
	addresses.NR13: 0xff,
	addresses.NR14: 0xbf,
	addresses.NR21: 0x3f,
	addresses.NR23: 0xff,
	addresses.NR24: 0xbf,
	addresses.NR30: 0x7f,
	addresses.NR31: 0xff,
	addresses.NR32: 0x9f,
	addresses.NR33: 0xff,
	addresses.NR34: 0xbf,
	addresses.NR41: 0xff,
	addresses.NR44: 0xbf,
	addresses.NR50: 0x77,
	addresses.NR51: 0xf3,
	addresses.NR52: 0xf1,
	addresses.LCDC: 0x91,
	addresses.STAT: 0x85,
	addresses.DMA:  0xff,
	addresses.BGP:  0xfc,
	addresses.OBP0: 0xff,
	addresses.OBP1: 0xff,
}
