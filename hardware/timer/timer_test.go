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

package timer_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/timer"
	"github.com/gopherboy/gopherboy/test"
)

type mockBus struct {
	regs    map[uint16]uint8
	changed map[uint16]bool
}

func newMockBus() *mockBus {
	return &mockBus{
		regs:    make(map[uint16]uint8),
		changed: make(map[uint16]bool),
	}
}

func (mem *mockBus) ChipRead(reg uint16) uint8 { return mem.regs[reg] }
func (mem *mockBus) ChipWrite(reg uint16, data uint8) { mem.regs[reg] = data }
func (mem *mockBus) ChipHasChanged(reg uint16) bool { return mem.changed[reg] }

// write emulates a CPU write to a register
func (mem *mockBus) write(reg uint16, data uint8) {
	mem.regs[reg] = data
	mem.changed[reg] = true
}

func (mem *mockBus) clearTriggers() {
	clear(mem.changed)
}

func TestDivider(t *testing.T) {
	mem := newMockBus()
	tmr := timer.NewTimer()
	tmr.Reset(mem)

	tmr.Sync(mem)
	tmr.Step(mem, timer.DivPeriod-1)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(0))
	tmr.Step(mem, 1)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(1))

	// DIV wraps after 256 increments
	tmr.Step(mem, timer.DivPeriod*255)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(0))

	tmr.Step(mem, timer.DivPeriod*10)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(10))

	// a write to DIV by the CPU resets the counter
	mem.write(addresses.DIV, 0)
	tmr.Sync(mem)
	mem.clearTriggers()
	tmr.Step(mem, timer.DivPeriod/2)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(0))
}

func TestResetFromBus(t *testing.T) {
	mem := newMockBus()
	mem.regs[addresses.DIV] = 0xab
	tmr := timer.NewTimer()
	tmr.Reset(mem)
	test.ExpectEquality(t, tmr.DIV(), uint8(0xab))
}

func TestPeriods(t *testing.T) {
	for tac, period := range []int{256, 4, 16, 64} {
		mem := newMockBus()
		tmr := timer.NewTimer()
		tmr.Reset(mem)

		mem.write(addresses.TAC, 0x04|uint8(tac))
		tmr.Sync(mem)
		test.ExpectEquality(t, tmr.Period(), period, tac)

		tmr.Step(mem, period*3-1)
		test.ExpectEquality(t, mem.regs[addresses.TIMA], uint8(2), tac)
		tmr.Step(mem, 1)
		test.ExpectEquality(t, mem.regs[addresses.TIMA], uint8(3), tac)
	}
}

func TestDisabled(t *testing.T) {
	mem := newMockBus()
	tmr := timer.NewTimer()
	tmr.Reset(mem)

	mem.write(addresses.TAC, 0x01)
	tmr.Sync(mem)
	tmr.Step(mem, 1000)
	test.ExpectEquality(t, mem.regs[addresses.TIMA], uint8(0))
	test.ExpectFailure(t, tmr.Enabled())
}

func TestOverflow(t *testing.T) {
	mem := newMockBus()
	tmr := timer.NewTimer()
	tmr.Reset(mem)

	mem.write(addresses.TAC, 0x05)
	mem.write(addresses.TMA, 0x80)
	mem.write(addresses.TIMA, 0xff)
	tmr.Sync(mem)
	mem.clearTriggers()

	tmr.Step(mem, 3)
	test.ExpectEquality(t, mem.regs[addresses.IF], uint8(0x00))
	tmr.Step(mem, 1)
	test.ExpectEquality(t, mem.regs[addresses.TIMA], uint8(0x80))
	test.ExpectEquality(t, mem.regs[addresses.IF], uint8(0x04))
}

func TestDividerWriteSyncedTwice(t *testing.T) {
	mem := newMockBus()
	tmr := timer.NewTimer()
	tmr.Reset(mem)
	tmr.Step(mem, timer.DivPeriod*5)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(5))

	// the bus trigger stays raised for the whole step so the timer can be
	// synced again, after interrupt dispatch, without resetting a second time
	mem.write(addresses.DIV, 0)
	tmr.Sync(mem)
	tmr.Step(mem, timer.DivPeriod-10)
	tmr.Sync(mem)
	tmr.Step(mem, 10)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(1))

	// a write in a later step resets the counter again
	mem.clearTriggers()
	tmr.ClearTriggers()
	mem.write(addresses.DIV, 0)
	tmr.Sync(mem)
	tmr.Step(mem, timer.DivPeriod-1)
	test.ExpectEquality(t, mem.regs[addresses.DIV], uint8(0))
}
