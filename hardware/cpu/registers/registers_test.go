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

package registers_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/cpu/registers"
	"github.com/gopherboy/gopherboy/test"
)

func TestPairs(t *testing.T) {
	var r registers.Registers

	r.SetAF(0x12ff)
	test.ExpectEquality(t, r.A, uint8(0x12))
	test.ExpectEquality(t, r.F, registers.Flags(0xf0))
	test.ExpectEquality(t, r.AF(), uint16(0x12f0))

	r.SetBC(0x3456)
	test.ExpectEquality(t, r.B, uint8(0x34))
	test.ExpectEquality(t, r.C, uint8(0x56))
	test.ExpectEquality(t, r.BC(), uint16(0x3456))

	r.SetDE(0x789a)
	test.ExpectEquality(t, r.DE(), uint16(0x789a))

	r.SetHL(0xbcde)
	test.ExpectEquality(t, r.H, uint8(0xbc))
	test.ExpectEquality(t, r.L, uint8(0xde))
	test.ExpectEquality(t, r.HL(), uint16(0xbcde))
}

func TestOperandIndex(t *testing.T) {
	var r registers.Registers

	for i := uint8(0); i < 8; i++ {
		if i == registers.IndirectHL {
			continue
		}
		r.Set8(i, 0x10+i)
	}
	test.ExpectEquality(t, r.B, uint8(0x10))
	test.ExpectEquality(t, r.C, uint8(0x11))
	test.ExpectEquality(t, r.D, uint8(0x12))
	test.ExpectEquality(t, r.E, uint8(0x13))
	test.ExpectEquality(t, r.H, uint8(0x14))
	test.ExpectEquality(t, r.L, uint8(0x15))
	test.ExpectEquality(t, r.A, uint8(0x17))
	test.ExpectEquality(t, r.Get8(7), uint8(0x17))

	r.Set16(3, 0xfffe)
	test.ExpectEquality(t, r.SP, uint16(0xfffe))
	test.ExpectEquality(t, r.Get16(2), uint16(0x1415))

	r.SetStack16(3, 0xab0f)
	test.ExpectEquality(t, r.GetStack16(3), uint16(0xab00))
	test.ExpectEquality(t, r.Get16(3), uint16(0xfffe))

	test.ExpectEquality(t, registers.Label8(registers.IndirectHL), "(HL)")
	test.ExpectEquality(t, registers.Label16(3), "SP")
	test.ExpectEquality(t, registers.LabelStack16(3), "AF")
}

func TestFlags(t *testing.T) {
	var f registers.Flags
	test.ExpectEquality(t, f.String(), "znhc")

	f.Set(registers.Zero, true)
	f.Set(registers.Carry, true)
	test.ExpectSuccess(t, f.Is(registers.Zero))
	test.ExpectSuccess(t, f.Is(registers.Zero|registers.Carry))
	test.ExpectFailure(t, f.Is(registers.Zero|registers.HalfCarry))
	test.ExpectEquality(t, f.String(), "ZnhC")

	f.Set(registers.Zero, false)
	test.ExpectEquality(t, f, registers.Carry)
}
