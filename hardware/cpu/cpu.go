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

package cpu

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/cpu/registers"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// Result records the details of the most recently executed instruction.
type Result struct {
	Address  uint16
	Opcode   uint8
	Value    uint32
	Shape    Shape
	Mnemonic string
	Cycles   int
}

func (r Result) String() string {
	return fmt.Sprintf("%04x %-16s %d", r.Address, r.Mnemonic, r.Cycles)
}

// CPU implements the SM83 found in the Game Boy. Register logic is
// implemented by the Registers type in the registers sub-package.
type CPU struct {
	registers.Registers

	// interrupt master enable
	IME bool

	// EI does not enable interrupts until after the following instruction
	imePending bool

	// Halted is set by the HALT instruction and cleared by the interrupt
	// resolver whenever an enabled interrupt is pending, whether or not IME
	// is set
	Halted bool

	// Stopped is set by the STOP instruction and is cleared by a joypad
	// interrupt request
	Stopped bool

	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is returned in the power-on state. See Reset().
func NewCPU() *CPU {
	mc := &CPU{}
	mc.Reset(false)
	return mc
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// Reset the CPU. If postBoot is true then the registers are set to the values
// left by the DMG boot ROM. Otherwise, the registers are cleared, which is
// the correct state for running a boot ROM.
func (mc *CPU) Reset(postBoot bool) {
	mc.Registers = registers.Registers{}
	mc.IME = false
	mc.imePending = false
	mc.Halted = false
	mc.Stopped = false
	mc.LastResult = Result{}

	if postBoot {
		mc.SetAF(0x01b0)
		mc.SetBC(0x0013)
		mc.SetDE(0x00d8)
		mc.SetHL(0x014d)
		mc.SP = 0xfffe
		mc.PC = 0x0100
	}
}

// Sleeping returns true if the CPU is in the halted or stopped state.
func (mc *CPU) Sleeping() bool {
	return mc.Halted || mc.Stopped
}

// IMEPending returns true if an EI instruction has been executed but the
// interrupt master enable flag has not yet been set.
func (mc *CPU) IMEPending() bool {
	return mc.imePending
}

// PromotePendingIME sets IME if an EI instruction is waiting to take effect.
// Returns true if IME was set by the call.
func (mc *CPU) PromotePendingIME() bool {
	if !mc.imePending {
		return false
	}
	mc.imePending = false
	mc.IME = true
	return true
}

// Push a 16-bit value onto the stack. The high byte is written first.
func (mc *CPU) Push(mem cpubus.Memory, v uint16) {
	mc.SP--
	mem.Write(mc.SP, uint8(v>>8))
	mc.SP--
	mem.Write(mc.SP, uint8(v))
}

// Pop a 16-bit value from the stack.
func (mc *CPU) Pop(mem cpubus.Memory) uint16 {
	lo := mem.Read(mc.SP)
	mc.SP++
	hi := mem.Read(mc.SP)
	mc.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Dispatch an interrupt. IME is cleared and the current PC is pushed onto the
// stack before the PC is set to the vector. The caller accounts for the
// cycles taken.
func (mc *CPU) Dispatch(mem cpubus.Memory, vector uint16) {
	mc.IME = false
	mc.imePending = false
	mc.Halted = false
	mc.Push(mem, mc.PC)
	mc.PC = vector
}

// ExecuteInstruction fetches and executes the instruction at PC. Returns the
// number of M-cycles taken by the instruction.
//
// An error is returned only if the opcode is not a valid SM83 instruction.
// The CPU state is undefined after such an error and emulation should not
// continue.
func (mc *CPU) ExecuteInstruction(mem cpubus.Memory) (int, error) {
	address := mc.PC
	opcode := mem.Read(mc.PC)
	mc.PC++

	h, err := Resolve(opcode, mem, &mc.PC)
	if err != nil {
		return 0, fmt.Errorf("cpu: %04x: %w", address, err)
	}

	value := uint32(opcode)
	for range h.Shape.Length() - 1 {
		value = value<<8 | uint32(mem.Read(mc.PC))
		mc.PC++
	}

	cycles := h.Invoke(mc, mem, value)

	mc.LastResult = Result{
		Address:  address,
		Opcode:   opcode,
		Value:    value,
		Shape:    h.Shape,
		Mnemonic: h.Mnemonic,
		Cycles:   cycles,
	}

	return cycles, nil
}
