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

package interrupts_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/cpu"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/test"
)

type mockBus struct {
	internal [0x10000]uint8
}

func (mem *mockBus) Read(address uint16) uint8 { return mem.internal[address] }
func (mem *mockBus) Write(address uint16, data uint8) { mem.internal[address] = data }
func (mem *mockBus) ChipRead(reg uint16) uint8 { return mem.internal[reg] }
func (mem *mockBus) ChipWrite(reg uint16, data uint8) { mem.internal[reg] = data }
func (mem *mockBus) ChipHasChanged(reg uint16) bool { return false }

func TestKind(t *testing.T) {
	test.ExpectEquality(t, interrupts.VBlank.Vector(), uint16(0x40))
	test.ExpectEquality(t, interrupts.LCDStat.Vector(), uint16(0x48))
	test.ExpectEquality(t, interrupts.Timer.Vector(), uint16(0x50))
	test.ExpectEquality(t, interrupts.Serial.Vector(), uint16(0x58))
	test.ExpectEquality(t, interrupts.Joypad.Vector(), uint16(0x60))
	test.ExpectEquality(t, interrupts.Joypad.Mask(), uint8(0x10))
}

func TestPriority(t *testing.T) {
	mem := &mockBus{}
	mc := cpu.NewCPU()
	mc.SP = 0xfffe
	mc.PC = 0x1234
	mc.IME = true

	var r interrupts.Resolver

	mem.internal[addresses.IE] = 0x1f
	interrupts.Request(mem, interrupts.Joypad)
	interrupts.Request(mem, interrupts.Timer)
	interrupts.Request(mem, interrupts.LCDStat)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x16))

	test.ExpectEquality(t, r.Resolve(mc, mem), interrupts.DispatchCycles)
	test.ExpectEquality(t, r.Last, interrupts.LCDStat)
	test.ExpectEquality(t, mc.PC, uint16(0x0048))
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x14))
	test.ExpectFailure(t, mc.IME)
	test.ExpectEquality(t, mem.internal[0xfffd], uint8(0x12))
	test.ExpectEquality(t, mem.internal[0xfffc], uint8(0x34))

	// IME is now clear so nothing else is dispatched
	test.ExpectEquality(t, r.Resolve(mc, mem), 0)
	test.ExpectFailure(t, r.Dispatched)

	mc.IME = true
	test.ExpectEquality(t, r.Resolve(mc, mem), interrupts.DispatchCycles)
	test.ExpectEquality(t, r.Last, interrupts.Timer)

	mc.IME = true
	test.ExpectEquality(t, r.Resolve(mc, mem), interrupts.DispatchCycles)
	test.ExpectEquality(t, r.Last, interrupts.Joypad)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x00))
}

func TestDisabledInterrupt(t *testing.T) {
	mem := &mockBus{}
	mc := cpu.NewCPU()
	mc.IME = true

	var r interrupts.Resolver

	// requested but not enabled
	mem.internal[addresses.IE] = interrupts.VBlank.Mask()
	interrupts.Request(mem, interrupts.Serial)
	test.ExpectEquality(t, r.Resolve(mc, mem), 0)
	test.ExpectEquality(t, mc.PC, uint16(0x0000))
}

func TestHaltWake(t *testing.T) {
	mem := &mockBus{}
	mc := cpu.NewCPU()
	mc.Halted = true

	var r interrupts.Resolver

	test.ExpectEquality(t, r.Resolve(mc, mem), 0)
	test.ExpectSuccess(t, mc.Halted)

	// halt is cleared even though IME is not set
	mem.internal[addresses.IE] = 0x01
	interrupts.Request(mem, interrupts.VBlank)
	test.ExpectEquality(t, r.Resolve(mc, mem), 0)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x01))
}

func TestDelayedEI(t *testing.T) {
	mem := &mockBus{}
	mc := cpu.NewCPU()
	mc.SP = 0xfffe

	var r interrupts.Resolver

	mem.internal[addresses.IE] = 0x01
	interrupts.Request(mem, interrupts.VBlank)

	// EI
	mem.internal[0x0000] = 0xfb
	_, err := mc.ExecuteInstruction(mem)
	test.DemandSuccess(t, err)

	// the pending EI is promoted but nothing is dispatched
	test.ExpectEquality(t, r.Resolve(mc, mem), 0)
	test.ExpectSuccess(t, mc.IME)

	test.ExpectEquality(t, r.Resolve(mc, mem), interrupts.DispatchCycles)
	test.ExpectEquality(t, mc.PC, uint16(0x0040))
}
