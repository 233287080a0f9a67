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

package cartridge

import (
	"fmt"
	"time"

	"github.com/gopherboy/gopherboy/logger"
)

// Kind identifies the cartridge controller.
type Kind int

// List of valid Kind values.
const (
	ROMOnly Kind = iota
	MBC1
	MBC3
	MBC5
)

func (k Kind) String() string {
	switch k {
	case ROMOnly:
		return "ROM"
	case MBC1:
		return "MBC1"
	case MBC3:
		return "MBC3"
	case MBC5:
		return "MBC5"
	}
	return "unknown"
}

// Sentinel is the value returned by reads of disabled or missing external
// RAM and of undefined controller registers.
const Sentinel = uint8(0xff)

// Cartridge is the cartridge inserted into the console, including the state
// of its controller.
type Cartridge struct {
	perm   logger.Permission
	Header Header

	rom []uint8
	ram []uint8

	// number of ROM banks actually present. the bank index is always reduced
	// modulo this number
	romBanks int

	// external RAM enabled by the controller. always true for ROMOnly
	ramEnabled bool

	// bank mapped into 0x4000 to 0x7fff and RAM bank mapped into 0xa000 to
	// 0xbfff. ROMOnly and MBC1 derive these from their control registers
	romBank int
	ramBank int

	mbc1 mbc1
	mbc3 mbc3
}

// NewCartridge creates the cartridge and controller described by the header
// of the ROM data. The data is copied.
func NewCartridge(perm logger.Permission, data []uint8) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	if !h.ChecksumOK {
		logger.Logf(perm, "cartridge", "header checksum mismatch (%#02x)", h.Checksum)
	}

	cart := &Cartridge{
		perm:   perm,
		Header: h,
	}

	// the ROM is stored as a whole number of banks. a short image is padded
	// and a mismatch with the header is noted but is not fatal
	banks := max((len(data)+ROMBankSize-1)/ROMBankSize, 2)
	if banks != h.ROMBanks {
		logger.Logf(perm, "cartridge", "header specifies %d ROM banks but image has %d", h.ROMBanks, banks)
	}
	cart.romBanks = banks
	cart.rom = make([]uint8, banks*ROMBankSize)
	copy(cart.rom, data)
	for i := len(data); i < len(cart.rom); i++ {
		cart.rom[i] = Sentinel
	}

	cart.ram = make([]uint8, h.RAMSize)

	if h.Timer {
		cart.mbc3.rtc.now = time.Now
		cart.mbc3.rtc.last = time.Now()
	}

	cart.Reset()

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s] bank=%d ram=%d", cart.Header.Title, cart.Header.Kind, cart.romBank, cart.ramBank)
}

// Kind returns the controller type.
func (cart *Cartridge) Kind() Kind {
	return cart.Header.Kind
}

// Reset the controller registers to their power-on state. The contents of
// external RAM are unchanged.
func (cart *Cartridge) Reset() {
	cart.romBank = 1
	cart.ramBank = 0
	cart.ramEnabled = cart.Header.Kind == ROMOnly
	cart.mbc1 = mbc1{bankLow: 1}
	cart.mbc3.reset()
}

// bankAddress returns the index into the ROM for a bank and an offset
// within that bank.
func (cart *Cartridge) bankAddress(bank int, offset uint16) int {
	return (bank%cart.romBanks)*ROMBankSize + int(offset&(ROMBankSize-1))
}

// ReadBank0 returns the value at the address in the 0x0000 to 0x3fff range.
func (cart *Cartridge) ReadBank0(address uint16) uint8 {
	switch cart.Header.Kind {
	case ROMOnly, MBC3, MBC5:
		return cart.rom[cart.bankAddress(0, address)]
	case MBC1:
		return cart.rom[cart.bankAddress(cart.mbc1.zeroBank(), address)]
	}
	panic(fmt.Sprintf("cartridge: unhandled controller kind (%d)", cart.Header.Kind))
}

// ReadCurrentBank returns the value at the address in the 0x4000 to 0x7fff
// range, from the currently selected bank.
func (cart *Cartridge) ReadCurrentBank(address uint16) uint8 {
	switch cart.Header.Kind {
	case ROMOnly:
		return cart.rom[cart.bankAddress(1, address)]
	case MBC1, MBC3, MBC5:
		return cart.rom[cart.bankAddress(cart.romBank, address)]
	}
	panic(fmt.Sprintf("cartridge: unhandled controller kind (%d)", cart.Header.Kind))
}

// WriteControl handles a write to the 0x0000 to 0x7fff range.
func (cart *Cartridge) WriteControl(address uint16, data uint8) {
	switch cart.Header.Kind {
	case ROMOnly:
		// no controller
	case MBC1:
		cart.writeMBC1(address, data)
	case MBC3:
		cart.writeMBC3(address, data)
	case MBC5:
		cart.writeMBC5(address, data)
	default:
		panic(fmt.Sprintf("cartridge: unhandled controller kind (%d)", cart.Header.Kind))
	}
}

// ramAddress returns the index into external RAM for the current RAM bank
// and the address. returns false if there is no RAM at that index.
func (cart *Cartridge) ramAddress(address uint16) (int, bool) {
	if len(cart.ram) == 0 {
		return 0, false
	}
	idx := cart.ramBank*RAMBankSize + int(address&(RAMBankSize-1))
	if idx >= len(cart.ram) {
		// RAM smaller than a bank (2KB) is mirrored
		if len(cart.ram) < RAMBankSize {
			return idx % len(cart.ram), true
		}
		return 0, false
	}
	return idx, true
}

// ReadRAM returns the value at the address in the 0xa000 to 0xbfff range.
func (cart *Cartridge) ReadRAM(address uint16) uint8 {
	if !cart.ramEnabled {
		return Sentinel
	}

	switch cart.Header.Kind {
	case ROMOnly, MBC1, MBC5:
		if idx, ok := cart.ramAddress(address); ok {
			return cart.ram[idx]
		}
		return Sentinel
	case MBC3:
		return cart.readMBC3(address)
	}
	panic(fmt.Sprintf("cartridge: unhandled controller kind (%d)", cart.Header.Kind))
}

// WriteRAM handles a write to the 0xa000 to 0xbfff range.
func (cart *Cartridge) WriteRAM(address uint16, data uint8) {
	if !cart.ramEnabled {
		return
	}

	switch cart.Header.Kind {
	case ROMOnly, MBC1, MBC5:
		if idx, ok := cart.ramAddress(address); ok {
			cart.ram[idx] = data
		}
	case MBC3:
		cart.writeMBC3RAM(address, data)
	default:
		panic(fmt.Sprintf("cartridge: unhandled controller kind (%d)", cart.Header.Kind))
	}
}

// ROMBank returns the bank currently mapped into the 0x4000 to 0x7fff range.
func (cart *Cartridge) ROMBank() int {
	if cart.Header.Kind == ROMOnly {
		return 1
	}
	return cart.romBank % cart.romBanks
}

// RAMEnabled returns true if the external RAM is enabled.
func (cart *Cartridge) RAMEnabled() bool {
	return cart.ramEnabled
}

// enable value common to all controllers. only the low nibble is
// significant.
func isEnable(data uint8) bool {
	return data&0x0f == 0x0a
}
