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

// Package addresses lists the memory map of the Game Boy: the boundaries of
// each memory region and the address of every memory-mapped register.
package addresses

// Memory regions. The End values are inclusive.
const (
	BootEnd        = 0x00ff
	ROMBank0       = 0x0000
	ROMBank0End    = 0x3fff
	ROMBankN       = 0x4000
	ROMBankNEnd    = 0x7fff
	VRAM           = 0x8000
	VRAMEnd        = 0x9fff
	ExternalRAM    = 0xa000
	ExternalRAMEnd = 0xbfff
	WRAM           = 0xc000
	WRAMEnd        = 0xdfff
	Echo           = 0xe000
	EchoEnd        = 0xfdff
	OAM            = 0xfe00
	OAMEnd         = 0xfe9f
	Unusable       = 0xfea0
	UnusableEnd    = 0xfeff
	IO             = 0xff00
	IOEnd          = 0xff7f
	HRAM           = 0xff80
	HRAMEnd        = 0xfffe
)

// Memory-mapped registers.
const (
	P1   = 0xff00
	SB   = 0xff01
	SC   = 0xff02
	DIV  = 0xff04
	TIMA = 0xff05
	TMA  = 0xff06
	TAC  = 0xff07
	IF   = 0xff0f

	NR10 = 0xff10
	NR11 = 0xff11
	NR12 = 0xff12
	NR13 = 0xff13
	NR14 = 0xff14
	NR21 = 0xff16
	NR22 = 0xff17
	NR23 = 0xff18
	NR24 = 0xff19
	NR30 = 0xff1a
	NR31 = 0xff1b
	NR32 = 0xff1c
	NR33 = 0xff1d
	NR34 = 0xff1e
	NR41 = 0xff20
	NR42 = 0xff21
	NR43 = 0xff22
	NR44 = 0xff23
	NR50 = 0xff24
	NR51 = 0xff25
	NR52 = 0xff26

	WaveRAM    = 0xff30
	WaveRAMEnd = 0xff3f

	LCDC = 0xff40
	STAT = 0xff41
	SCY  = 0xff42
	SCX  = 0xff43
	LY   = 0xff44
	LYC  = 0xff45
	DMA  = 0xff46
	BGP  = 0xff47
	OBP0 = 0xff48
	OBP1 = 0xff49
	WY   = 0xff4a
	WX   = 0xff4b

	BootOff = 0xff50

	IE = 0xffff
)

// Names of the memory-mapped registers.
var Names = map[uint16]string{
	P1: "P1", SB: "SB", SC: "SC", DIV: "DIV", TIMA: "TIMA", TMA: "TMA", TAC: "TAC", IF: "IF",
	NR10: "NR10", NR11: "NR11", NR12: "NR12", NR13: "NR13", NR14: "NR14",
	NR21: "NR21", NR22: "NR22", NR23: "NR23", NR24: "NR24",
	NR30: "NR30", NR31: "NR31", NR32: "NR32", NR33: "NR33", NR34: "NR34",
	NR41: "NR41", NR42: "NR42", NR43: "NR43", NR44: "NR44",
	NR50: "NR50", NR51: "NR51", NR52: "NR52",
	LCDC: "LCDC", STAT: "STAT", SCY: "SCY", SCX: "SCX", LY: "LY", LYC: "LYC",
	DMA: "DMA", BGP: "BGP", OBP0: "OBP0", OBP1: "OBP1", WY: "WY", WX: "WX",
	BootOff: "BOOT", IE: "IE",
}
