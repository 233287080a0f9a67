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

import "github.com/gopherboy/gopherboy/hardware/memory/cpubus"

// Shape describes how many bytes an instruction occupies and whether the
// instruction accesses the bus when it executes.
type Shape int

// List of valid Shape values. The Mem variants of each shape are given
// access to the bus.
const (
	// the handler takes no arguments
	Implied Shape = iota
	ImpliedMem

	// the handler receives the opcode byte
	Opcode8
	Opcode8Mem

	// the handler receives the opcode and one trailing byte as
	// opcode<<8 | n
	Operand16
	Operand16Mem

	// the handler receives the opcode and two trailing bytes as
	// opcode<<16 | n1<<8 | n2. the trailing bytes are in memory order so n1
	// is the low byte of a 16-bit immediate value
	Operand24
	Operand24Mem
)

func (s Shape) String() string {
	switch s {
	case Implied:
		return "implied"
	case ImpliedMem:
		return "implied (mem)"
	case Opcode8:
		return "opcode8"
	case Opcode8Mem:
		return "opcode8 (mem)"
	case Operand16:
		return "operand16"
	case Operand16Mem:
		return "operand16 (mem)"
	case Operand24:
		return "operand24"
	case Operand24Mem:
		return "operand24 (mem)"
	}
	return "unknown shape"
}

// Length returns the number of bytes, including the opcode, of an
// instruction with this shape.
func (s Shape) Length() int {
	switch s {
	case Operand16, Operand16Mem:
		return 2
	case Operand24, Operand24Mem:
		return 3
	}
	return 1
}

// Mem returns true if instructions of this shape access the bus.
func (s Shape) Mem() bool {
	switch s {
	case ImpliedMem, Opcode8Mem, Operand16Mem, Operand24Mem:
		return true
	}
	return false
}

// Handler is the resolved form of an opcode. Only the function matching the
// Shape is set. The function returns the number of M-cycles taken.
type Handler struct {
	Shape    Shape
	Mnemonic string

	implied      func(mc *CPU) int
	impliedMem   func(mc *CPU, mem cpubus.Memory) int
	opcode8      func(mc *CPU, op uint8) int
	opcode8Mem   func(mc *CPU, mem cpubus.Memory, op uint8) int
	operand16    func(mc *CPU, v uint16) int
	operand16Mem func(mc *CPU, mem cpubus.Memory, v uint16) int
	operand24    func(mc *CPU, v uint32) int
	operand24Mem func(mc *CPU, mem cpubus.Memory, v uint32) int
}

// IsValid returns false for the zero Handler.
func (h Handler) IsValid() bool {
	return h.Mnemonic != ""
}

// Invoke the handler with the fully fetched instruction value. The value is
// built according to the Shape. See the Shape type for details.
func (h Handler) Invoke(mc *CPU, mem cpubus.Memory, value uint32) int {
	switch h.Shape {
	case Implied:
		return h.implied(mc)
	case ImpliedMem:
		return h.impliedMem(mc, mem)
	case Opcode8:
		return h.opcode8(mc, uint8(value))
	case Opcode8Mem:
		return h.opcode8Mem(mc, mem, uint8(value))
	case Operand16:
		return h.operand16(mc, uint16(value))
	case Operand16Mem:
		return h.operand16Mem(mc, mem, uint16(value))
	case Operand24:
		return h.operand24(mc, value)
	case Operand24Mem:
		return h.operand24Mem(mc, mem, value)
	}
	panic("cpu: handler has an unknown shape")
}

// immediate16 extracts the little-endian 16-bit immediate value from an
// Operand24 value.
func immediate16(v uint32) uint16 {
	return uint16(v&0xff)<<8 | uint16(v>>8)&0xff
}
