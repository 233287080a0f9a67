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

package registers

import "fmt"

// Registers is the complete register file of the CPU.
type Registers struct {
	A uint8
	F Flags
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP uint16
	PC uint16
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x %s",
		r.AF(), r.BC(), r.DE(), r.HL(), r.SP, r.PC, r.F)
}

func pair(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// AF returns the A and F registers as a 16-bit value.
func (r *Registers) AF() uint16 { return pair(r.A, uint8(r.F&flagsMask)) }

// BC returns the B and C registers as a 16-bit value.
func (r *Registers) BC() uint16 { return pair(r.B, r.C) }

// DE returns the D and E registers as a 16-bit value.
func (r *Registers) DE() uint16 { return pair(r.D, r.E) }

// HL returns the H and L registers as a 16-bit value.
func (r *Registers) HL() uint16 { return pair(r.H, r.L) }

// SetAF loads the A and F registers. The unused bits of F are discarded.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = Flags(v) & flagsMask
}

// SetBC loads the B and C registers.
func (r *Registers) SetBC(v uint16) { r.B, r.C = uint8(v>>8), uint8(v) }

// SetDE loads the D and E registers.
func (r *Registers) SetDE(v uint16) { r.D, r.E = uint8(v>>8), uint8(v) }

// SetHL loads the H and L registers.
func (r *Registers) SetHL(v uint16) { r.H, r.L = uint8(v>>8), uint8(v) }

// IndirectHL is the operand index of the memory location pointed to by HL.
// Instructions that encode an 8-bit operand use the three bit index
// B, C, D, E, H, L, (HL), A. The index 6 is not a register and must be
// handled by the caller.
const IndirectHL = 6

// Get8 returns the 8-bit register for the three bit operand index.
func (r *Registers) Get8(idx uint8) uint8 {
	switch idx & 0x07 {
	case 0:
		return r.B
	case 1:
		return r.C
	case 2:
		return r.D
	case 3:
		return r.E
	case 4:
		return r.H
	case 5:
		return r.L
	case 7:
		return r.A
	}
	panic("registers: operand index 6 is not a register")
}

// Set8 loads the 8-bit register for the three bit operand index.
func (r *Registers) Set8(idx uint8, v uint8) {
	switch idx & 0x07 {
	case 0:
		r.B = v
	case 1:
		r.C = v
	case 2:
		r.D = v
	case 3:
		r.E = v
	case 4:
		r.H = v
	case 5:
		r.L = v
	case 7:
		r.A = v
	default:
		panic("registers: operand index 6 is not a register")
	}
}

// Get16 returns the 16-bit register for the two bit index used by the
// 16-bit load and arithmetic instructions: BC, DE, HL, SP.
func (r *Registers) Get16(idx uint8) uint16 {
	switch idx & 0x03 {
	case 0:
		return r.BC()
	case 1:
		return r.DE()
	case 2:
		return r.HL()
	}
	return r.SP
}

// Set16 loads the 16-bit register for the two bit index used by the 16-bit
// load and arithmetic instructions: BC, DE, HL, SP.
func (r *Registers) Set16(idx uint8, v uint16) {
	switch idx & 0x03 {
	case 0:
		r.SetBC(v)
	case 1:
		r.SetDE(v)
	case 2:
		r.SetHL(v)
	default:
		r.SP = v
	}
}

// GetStack16 returns the 16-bit register for the two bit index used by the
// PUSH and POP instructions: BC, DE, HL, AF.
func (r *Registers) GetStack16(idx uint8) uint16 {
	if idx&0x03 == 3 {
		return r.AF()
	}
	return r.Get16(idx)
}

// SetStack16 loads the 16-bit register for the two bit index used by the
// PUSH and POP instructions: BC, DE, HL, AF.
func (r *Registers) SetStack16(idx uint8, v uint16) {
	if idx&0x03 == 3 {
		r.SetAF(v)
		return
	}
	r.Set16(idx, v)
}

// Label8 returns the name of the 8-bit operand for the three bit index.
func Label8(idx uint8) string {
	return [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}[idx&0x07]
}

// Label16 returns the name of the 16-bit register for the two bit index.
func Label16(idx uint8) string {
	return [4]string{"BC", "DE", "HL", "SP"}[idx&0x03]
}

// LabelStack16 returns the name of the PUSH/POP register for the two bit
// index.
func LabelStack16(idx uint8) string {
	return [4]string{"BC", "DE", "HL", "AF"}[idx&0x03]
}
