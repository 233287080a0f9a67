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

// Package interrupts resolves pending interrupts at the end of every
// instruction.
//
// An interrupt is requested by setting a bit in the IF register and is
// enabled by the corresponding bit in the IE register. When an enabled
// interrupt is requested and the CPU's interrupt master enable (IME) flag is
// set, the CPU pushes the program counter and jumps to the interrupt's
// vector. The dispatch takes five machine cycles.
//
// When more than one interrupt is pending, the interrupt with the lowest bit
// number is dispatched first.
package interrupts

import (
	"github.com/gopherboy/gopherboy/hardware/cpu"
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// Kind identifies one of the five interrupt sources.
type Kind int

// List of valid Kind values in priority order.
const (
	VBlank Kind = iota
	LCDStat
	Timer
	Serial
	Joypad
)

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCD STAT"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Mask returns the bit of the interrupt in the IE and IF registers.
func (k Kind) Mask() uint8 {
	return 1 << uint(k)
}

// Vector returns the address the CPU jumps to when dispatching the interrupt.
func (k Kind) Vector() uint16 {
	return 0x0040 + uint16(k)*0x08
}

// DispatchCycles is the number of M-cycles taken to dispatch an interrupt.
const DispatchCycles = 5

// Request an interrupt by setting the bit in the IF register.
func Request(mem chipbus.Memory, k Kind) {
	mem.ChipWrite(addresses.IF, mem.ChipRead(addresses.IF)|k.Mask())
}

// Pending returns the enabled and requested interrupts.
func Pending(mem chipbus.Memory) uint8 {
	return mem.ChipRead(addresses.IE) & mem.ChipRead(addresses.IF) & 0x1f
}

// Bus is the view of memory required by the Resolver. The CPU side is used
// to push the program counter and the chip side is used to access IE and IF.
type Bus interface {
	cpubus.Memory
	chipbus.Memory
}

// Resolver decides whether an interrupt should be dispatched.
type Resolver struct {
	// the most recently dispatched interrupt. only valid if Dispatched is
	// true
	Last       Kind
	Dispatched bool
}

// Resolve pending interrupts. Returns the number of M-cycles consumed, which
// will be zero if no interrupt was dispatched.
//
// The halt state of the CPU is cleared whenever an enabled interrupt is
// requested, regardless of the IME flag.
//
// A pending EI instruction is promoted to IME by this function. An interrupt
// will not be dispatched in the same call that the promotion happens.
func (r *Resolver) Resolve(mc *cpu.CPU, mem Bus) int {
	r.Dispatched = false

	pending := Pending(mem)
	if pending != 0 {
		mc.Halted = false
	}

	if mc.PromotePendingIME() {
		return 0
	}

	if !mc.IME || pending == 0 {
		return 0
	}

	for k := VBlank; k <= Joypad; k++ {
		if pending&k.Mask() == 0 {
			continue
		}
		mem.ChipWrite(addresses.IF, mem.ChipRead(addresses.IF)&^k.Mask())
		mc.Dispatch(mem, k.Vector())
		r.Last = k
		r.Dispatched = true
		return DispatchCycles
	}

	return 0
}
