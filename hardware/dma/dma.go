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

// Package dma implements the OAM DMA engine. A write to the DMA register
// starts a transfer of 160 bytes from the page named by the written value
// into object attribute memory. One byte is copied every machine cycle.
//
// While a transfer is in progress, the CPU cannot access OAM. The engine
// itself does not block the CPU. The orchestrator copies the Active() state
// to the memory bus.
package dma

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
)

// Length is the number of bytes copied by a transfer.
const Length = addresses.OAMEnd - addresses.OAM + 1

// Bus is the view of memory required by the DMA engine.
type Bus interface {
	chipbus.Memory

	// Peek reads memory without the access restrictions placed on the CPU
	Peek(address uint16) uint8

	// OAM returns a slice aliasing object attribute memory
	OAM() []uint8
}

// DMA implements the OAM DMA engine.
type DMA struct {
	source    uint16
	index     int
	remaining int
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA() *DMA {
	return &DMA{}
}

func (dma *DMA) String() string {
	if dma.remaining == 0 {
		return "inactive"
	}
	return fmt.Sprintf("%04x [%d remaining]", dma.source+uint16(dma.index), dma.remaining)
}

// Reset stops any transfer in progress.
func (dma *DMA) Reset() {
	dma.source = 0
	dma.index = 0
	dma.remaining = 0
}

// Active returns true if a transfer is in progress.
func (dma *DMA) Active() bool {
	return dma.remaining > 0
}

// Sync the engine with the bus. If the DMA register has been written since
// the start of the machine step then the transfer is started from the
// beginning. This is true even if the transfer was started by an earlier
// call to Sync() in the same step.
func (dma *DMA) Sync(mem chipbus.Memory) {
	if !mem.ChipHasChanged(addresses.DMA) {
		return
	}
	dma.source = uint16(mem.ChipRead(addresses.DMA)) << 8
	dma.index = 0
	dma.remaining = Length
}

// Step the engine by the number of M-cycles.
func (dma *DMA) Step(mem Bus, cycles int) {
	if dma.remaining == 0 {
		return
	}

	oam := mem.OAM()
	for ; cycles > 0 && dma.remaining > 0; cycles-- {
		oam[dma.index] = mem.Peek(dma.source + uint16(dma.index))
		dma.index++
		dma.remaining--
	}
}
