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

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/logger"
)

// BootROMSize is the size of the DMG boot ROM.
const BootROMSize = 0x100

// value read from unmapped or inaccessible memory.
const openBus = uint8(0xff)

// Memory is the memory bus of the console.
type Memory struct {
	perm logger.Permission

	cart *cartridge.Cartridge

	// the boot ROM overlays the cartridge until a non-zero value is written
	// to the BOOT register. it is never re-enabled
	boot        []uint8
	bootEnabled bool

	vram [addresses.VRAMEnd - addresses.VRAM + 1]uint8
	wram [addresses.WRAMEnd - addresses.WRAM + 1]uint8
	oam  [addresses.OAMEnd - addresses.OAM + 1]uint8
	hram [addresses.HRAMEnd - addresses.HRAM + 1]uint8

	// memory-mapped registers and the flags indicating a CPU write to the
	// register during the current machine step
	io      [addresses.IOEnd - addresses.IO + 1]uint8
	changed [addresses.IOEnd - addresses.IO + 1]bool
	ie      uint8

	// OAM is inaccessible to the CPU while a DMA transfer is in progress
	dmaActive bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The boot argument can be nil. If it is not nil it must be BootROMSize
// bytes long.
func NewMemory(perm logger.Permission, cart *cartridge.Cartridge, boot []uint8) (*Memory, error) {
	if cart == nil {
		return nil, fmt.Errorf("memory: no cartridge")
	}
	if boot != nil && len(boot) != BootROMSize {
		return nil, fmt.Errorf("memory: boot ROM must be %d bytes (not %d)", BootROMSize, len(boot))
	}

	mem := &Memory{
		perm: perm,
		cart: cart,
		boot: boot,
	}
	mem.Reset()

	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("boot=%v dma=%v IE=%02x IF=%02x", mem.bootEnabled, mem.dmaActive, mem.ie, mem.io[addresses.IF-addresses.IO])
}

// Reset the bus to its power-on state. If there is no boot ROM then the
// registers are set to the values they would have after the boot ROM has
// finished.
func (mem *Memory) Reset() {
	mem.bootEnabled = mem.boot != nil
	clear(mem.vram[:])
	clear(mem.wram[:])
	clear(mem.oam[:])
	clear(mem.hram[:])
	clear(mem.io[:])
	clear(mem.changed[:])
	mem.ie = 0
	mem.dmaActive = false

	if !mem.bootEnabled {
		for reg, v := range postBootRegisters {
			mem.io[reg-addresses.IO] = v
		}
		mem.io[addresses.BootOff-addresses.IO] = 0x01
	}
}

// BootEnabled returns true if the boot ROM is currently mapped.
func (mem *Memory) BootEnabled() bool {
	return mem.bootEnabled
}

// Cartridge returns the inserted cartridge.
func (mem *Memory) Cartridge() *cartridge.Cartridge {
	return mem.cart
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch {
	case address >= addresses.OAM && address <= addresses.OAMEnd:
		if mem.dmaActive {
			return openBus
		}
		return mem.oam[address-addresses.OAM]
	case address >= addresses.IO && address <= addresses.IOEnd:
		idx := address - addresses.IO
		return mem.io[idx] | readMask[idx]
	}
	return mem.Peek(address)
}

// Peek returns the value at the address without the access restrictions
// applied to the CPU. Unused bits of registers are not set.
func (mem *Memory) Peek(address uint16) uint8 {
	switch {
	case address <= addresses.BootEnd && mem.bootEnabled:
		return mem.boot[address]
	case address <= addresses.ROMBank0End:
		return mem.cart.ReadBank0(address)
	case address <= addresses.ROMBankNEnd:
		return mem.cart.ReadCurrentBank(address)
	case address <= addresses.VRAMEnd:
		return mem.vram[address-addresses.VRAM]
	case address <= addresses.ExternalRAMEnd:
		return mem.cart.ReadRAM(address)
	case address <= addresses.WRAMEnd:
		return mem.wram[address-addresses.WRAM]
	case address <= addresses.EchoEnd:
		return mem.wram[address-addresses.Echo]
	case address <= addresses.OAMEnd:
		return mem.oam[address-addresses.OAM]
	case address <= addresses.UnusableEnd:
		return openBus
	case address <= addresses.IOEnd:
		return mem.io[address-addresses.IO]
	case address <= addresses.HRAMEnd:
		return mem.hram[address-addresses.HRAM]
	}
	return mem.ie
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	switch {
	case address <= addresses.ROMBankNEnd:
		mem.cart.WriteControl(address, data)
	case address <= addresses.VRAMEnd:
		mem.vram[address-addresses.VRAM] = data
	case address <= addresses.ExternalRAMEnd:
		mem.cart.WriteRAM(address, data)
	case address <= addresses.WRAMEnd:
		mem.wram[address-addresses.WRAM] = data
	case address <= addresses.EchoEnd:
		mem.wram[address-addresses.Echo] = data
	case address <= addresses.OAMEnd:
		if !mem.dmaActive {
			mem.oam[address-addresses.OAM] = data
		}
	case address <= addresses.UnusableEnd:
		// writes are ignored
	case address <= addresses.IOEnd:
		mem.writeIO(address, data)
	case address <= addresses.HRAMEnd:
		mem.hram[address-addresses.HRAM] = data
	default:
		mem.ie = data
	}
}

// writeIO applies the CPU write rules for a memory-mapped register.
func (mem *Memory) writeIO(reg uint16, data uint8) {
	idx := reg - addresses.IO
	mem.changed[idx] = true

	switch reg {
	case addresses.DIV:
		// any write resets the divider
		mem.io[idx] = 0
	case addresses.LY:
		// read only
	case addresses.STAT:
		// mode and coincidence bits are read only
		mem.io[idx] = mem.io[idx]&0x07 | data&0x78
	case addresses.P1:
		// only the selection bits are writable
		mem.io[idx] = mem.io[idx]&0x0f | data&0x30
	case addresses.IF:
		mem.io[idx] = data & 0x1f
	case addresses.NR52:
		// only the power bit is writable. channel status is set by the APU
		mem.io[idx] = mem.io[idx]&0x0f | data&0x80
	case addresses.BootOff:
		mem.io[idx] = data
		if data != 0 && mem.bootEnabled {
			mem.bootEnabled = false
			logger.Log(mem.perm, "memory", "boot ROM disabled")
		}
	default:
		mem.io[idx] = data
	}
}

// ChipRead implements the chipbus.Memory interface.
func (mem *Memory) ChipRead(reg uint16) uint8 {
	switch {
	case reg >= addresses.IO && reg <= addresses.IOEnd:
		return mem.io[reg-addresses.IO]
	case reg == addresses.IE:
		return mem.ie
	}
	return mem.Peek(reg)
}

// ChipWrite implements the chipbus.Memory interface.
func (mem *Memory) ChipWrite(reg uint16, data uint8) {
	switch {
	case reg >= addresses.IO && reg <= addresses.IOEnd:
		mem.io[reg-addresses.IO] = data
	case reg == addresses.IE:
		mem.ie = data
	default:
		panic(fmt.Sprintf("memory: ChipWrite to non-register address (%#04x)", reg))
	}
}

// ChipHasChanged implements the chipbus.Memory interface.
func (mem *Memory) ChipHasChanged(reg uint16) bool {
	if reg >= addresses.IO && reg <= addresses.IOEnd {
		return mem.changed[reg-addresses.IO]
	}
	return false
}

// ClearTriggers clears the changed flags of every register. Called once at
// the end of every machine step.
func (mem *Memory) ClearTriggers() {
	clear(mem.changed[:])
}

// VRAM returns the video RAM. The returned slice aliases the bus.
func (mem *Memory) VRAM() []uint8 {
	return mem.vram[:]
}

// OAM returns the object attribute memory. The returned slice aliases the
// bus.
func (mem *Memory) OAM() []uint8 {
	return mem.oam[:]
}

// SetDMAActive blocks (or unblocks) CPU access to OAM.
func (mem *Memory) SetDMAActive(active bool) {
	mem.dmaActive = active
}
