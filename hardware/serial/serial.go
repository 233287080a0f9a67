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

// Package serial implements the link port of the console. There is never
// another console on the other end of the link. A transfer started with the
// internal clock shifts out the byte in SB and shifts in 0xff.
//
// Bytes shifted out can be echoed to an io.Writer. Many test ROMs report
// their results this way.
package serial

import (
	"io"

	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
	"github.com/gopherboy/gopherboy/logger"
)

// TransferCycles is the number of M-cycles taken to shift out one byte with
// the internal clock (8192Hz).
const TransferCycles = 128

const (
	scStart    = 0x80
	scInternal = 0x01
)

// Serial implements the SB and SC registers.
type Serial struct {
	perm logger.Permission
	out  io.Writer

	active    bool
	remaining int
}

// NewSerial is the preferred method of initialisation for the Serial type.
// The out argument can be nil.
func NewSerial(perm logger.Permission, out io.Writer) *Serial {
	return &Serial{
		perm: perm,
		out:  out,
	}
}

// Reset the serial port.
func (sr *Serial) Reset() {
	sr.active = false
	sr.remaining = 0
}

// Active returns true if a transfer is in progress.
func (sr *Serial) Active() bool {
	return sr.active
}

// Sync the serial port with the registers on the bus. A transfer starts when
// the CPU writes to SC with both the start and internal clock bits set.
func (sr *Serial) Sync(mem chipbus.Memory) {
	if !mem.ChipHasChanged(addresses.SC) || sr.active {
		return
	}

	sc := mem.ChipRead(addresses.SC)
	if sc&(scStart|scInternal) != scStart|scInternal {
		return
	}

	sr.active = true
	sr.remaining = TransferCycles

	if sr.out != nil {
		_, err := sr.out.Write([]byte{mem.ChipRead(addresses.SB)})
		if err != nil {
			logger.Logf(sr.perm, "serial", "output: %v", err)
		}
	}
}

// Step the serial port by the number of M-cycles.
func (sr *Serial) Step(mem chipbus.Memory, cycles int) {
	if !sr.active {
		return
	}

	sr.remaining -= cycles
	if sr.remaining > 0 {
		return
	}

	sr.active = false
	mem.ChipWrite(addresses.SB, 0xff)
	mem.ChipWrite(addresses.SC, mem.ChipRead(addresses.SC)&^scStart)
	interrupts.Request(mem, interrupts.Serial)
}
