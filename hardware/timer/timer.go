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

// Package timer implements the divider and the programmable timer.
//
// Both are driven by a single internal counter that advances once per
// machine cycle. The DIV register is the upper eight bits of the counter.
// TIMA is incremented whenever the counter reaches a multiple of the period
// selected by TAC. When TIMA overflows it is reloaded from TMA and the timer
// interrupt is requested.
package timer

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
)

// DIV increments once every DivPeriod M-cycles.
const DivPeriod = 64

// TIMA periods in M-cycles, indexed by the lower two bits of TAC.
var periods = [4]uint16{256, 4, 16, 64}

const tacEnable = 0x04

// Timer implements the DIV, TIMA, TMA and TAC registers.
type Timer struct {
	counter uint16

	// the DIV write of the current step has already reset the counter. Sync()
	// may be called more than once per step
	divWritten bool

	tima uint8
	tma  uint8
	tac  uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%02x TIMA=%02x TMA=%02x TAC=%02x", tmr.DIV(), tmr.tima, tmr.tma, tmr.tac)
}

// Reset the timer. The internal counter is initialised from the current value
// of the DIV register.
func (tmr *Timer) Reset(mem chipbus.Memory) {
	tmr.counter = uint16(mem.ChipRead(addresses.DIV)) << 6
	tmr.tima = mem.ChipRead(addresses.TIMA)
	tmr.tma = mem.ChipRead(addresses.TMA)
	tmr.tac = mem.ChipRead(addresses.TAC)
	tmr.divWritten = false
}

// DIV returns the current value of the divider.
func (tmr *Timer) DIV() uint8 {
	return uint8(tmr.counter >> 6)
}

// Enabled returns true if TIMA is counting.
func (tmr *Timer) Enabled() bool {
	return tmr.tac&tacEnable == tacEnable
}

// Period returns the number of M-cycles between TIMA increments.
func (tmr *Timer) Period() int {
	return int(periods[tmr.tac&0x03])
}

// Sync the timer with the registers on the bus. A write to DIV by the CPU
// resets the internal counter. The reset happens once per write, however many
// times Sync() is called before ClearTriggers().
func (tmr *Timer) Sync(mem chipbus.Memory) {
	tmr.tima = mem.ChipRead(addresses.TIMA)
	tmr.tma = mem.ChipRead(addresses.TMA)
	tmr.tac = mem.ChipRead(addresses.TAC)
	if mem.ChipHasChanged(addresses.DIV) && !tmr.divWritten {
		tmr.counter = 0
		tmr.divWritten = true
	}
}

// ClearTriggers should be called at the same time as the bus triggers are
// cleared.
func (tmr *Timer) ClearTriggers() {
	tmr.divWritten = false
}

// Step the timer by the number of M-cycles. DIV and TIMA are written back to
// the bus.
func (tmr *Timer) Step(mem chipbus.Memory, cycles int) {
	period := periods[tmr.tac&0x03]

	for range cycles {
		tmr.counter++
		if !tmr.Enabled() || tmr.counter%period != 0 {
			continue
		}
		tmr.tima++
		if tmr.tima == 0 {
			tmr.tima = tmr.tma
			interrupts.Request(mem, interrupts.Timer)
		}
	}

	mem.ChipWrite(addresses.DIV, tmr.DIV())
	mem.ChipWrite(addresses.TIMA, tmr.tima)
}
