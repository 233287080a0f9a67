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

// Add8 adds b (and the carry if carry is true) to a.
func Add8(a, b uint8, carry bool) (uint8, Flags) {
	var c uint16
	if carry {
		c = 1
	}
	r := uint16(a) + uint16(b) + c
	h := (a&0x0f)+(b&0x0f)+uint8(c) > 0x0f
	res := uint8(r)
	return res, flag(Zero, res == 0) | flag(HalfCarry, h) | flag(Carry, r > 0xff)
}

// Sub8 subtracts b (and the carry if carry is true) from a. The same
// function serves the CP instruction, the caller discarding the result.
func Sub8(a, b uint8, carry bool) (uint8, Flags) {
	var c int
	if carry {
		c = 1
	}
	r := int(a) - int(b) - c
	h := int(a&0x0f)-int(b&0x0f)-c < 0
	res := uint8(r)
	return res, Subtract | flag(Zero, res == 0) | flag(HalfCarry, h) | flag(Carry, r < 0)
}

// And8 is the bitwise AND of a and b.
func And8(a, b uint8) (uint8, Flags) {
	r := a & b
	return r, HalfCarry | flag(Zero, r == 0)
}

// Or8 is the bitwise OR of a and b.
func Or8(a, b uint8) (uint8, Flags) {
	r := a | b
	return r, flag(Zero, r == 0)
}

// Xor8 is the bitwise XOR of a and b.
func Xor8(a, b uint8) (uint8, Flags) {
	r := a ^ b
	return r, flag(Zero, r == 0)
}

// Inc8 increments v. The carry flag is preserved from f.
func Inc8(v uint8, f Flags) (uint8, Flags) {
	r := v + 1
	return r, (f & Carry) | flag(Zero, r == 0) | flag(HalfCarry, v&0x0f == 0x0f)
}

// Dec8 decrements v. The carry flag is preserved from f.
func Dec8(v uint8, f Flags) (uint8, Flags) {
	r := v - 1
	return r, (f & Carry) | Subtract | flag(Zero, r == 0) | flag(HalfCarry, v&0x0f == 0x00)
}

// AddHL16 adds v to hl. The zero flag is preserved from f. Half carry is
// from bit 11 and carry is from bit 15.
func AddHL16(hl, v uint16, f Flags) (uint16, Flags) {
	r := uint32(hl) + uint32(v)
	h := (hl&0x0fff)+(v&0x0fff) > 0x0fff
	return uint16(r), (f & Zero) | flag(HalfCarry, h) | flag(Carry, r > 0xffff)
}

// AddSP adds the signed value e to sp. The flags are calculated on the low
// byte as though it were an unsigned 8-bit addition. Zero is always clear.
func AddSP(sp uint16, e int8) (uint16, Flags) {
	u := uint16(uint8(e))
	r := sp + uint16(int16(e))
	h := (sp&0x0f)+(u&0x0f) > 0x0f
	c := (sp&0xff)+u > 0xff
	return r, flag(HalfCarry, h) | flag(Carry, c)
}

// RLC rotates v left. Bit 7 goes to both bit 0 and the carry.
func RLC(v uint8) (uint8, Flags) {
	r := v<<1 | v>>7
	return r, flag(Zero, r == 0) | flag(Carry, v&0x80 == 0x80)
}

// RRC rotates v right. Bit 0 goes to both bit 7 and the carry.
func RRC(v uint8) (uint8, Flags) {
	r := v>>1 | v<<7
	return r, flag(Zero, r == 0) | flag(Carry, v&0x01 == 0x01)
}

// RL rotates v left through the carry.
func RL(v uint8, f Flags) (uint8, Flags) {
	r := v << 1
	if f.Is(Carry) {
		r |= 0x01
	}
	return r, flag(Zero, r == 0) | flag(Carry, v&0x80 == 0x80)
}

// RR rotates v right through the carry.
func RR(v uint8, f Flags) (uint8, Flags) {
	r := v >> 1
	if f.Is(Carry) {
		r |= 0x80
	}
	return r, flag(Zero, r == 0) | flag(Carry, v&0x01 == 0x01)
}

// SLA shifts v left into the carry. Bit 0 becomes zero.
func SLA(v uint8) (uint8, Flags) {
	r := v << 1
	return r, flag(Zero, r == 0) | flag(Carry, v&0x80 == 0x80)
}

// SRA shifts v right into the carry. Bit 7 is unchanged.
func SRA(v uint8) (uint8, Flags) {
	r := v>>1 | v&0x80
	return r, flag(Zero, r == 0) | flag(Carry, v&0x01 == 0x01)
}

// SRL shifts v right into the carry. Bit 7 becomes zero.
func SRL(v uint8) (uint8, Flags) {
	r := v >> 1
	return r, flag(Zero, r == 0) | flag(Carry, v&0x01 == 0x01)
}

// Swap exchanges the upper and lower nibbles of v.
func Swap(v uint8) (uint8, Flags) {
	r := v<<4 | v>>4
	return r, flag(Zero, r == 0)
}

// Bit tests bit b of v. The carry flag is preserved from f.
func Bit(v uint8, b uint8, f Flags) Flags {
	return (f & Carry) | HalfCarry | flag(Zero, v&(1<<(b&0x07)) == 0)
}

// DAA adjusts a to be a valid BCD value after an addition or subtraction.
// The subtract flag is preserved from f.
func DAA(a uint8, f Flags) (uint8, Flags) {
	carry := f.Is(Carry)
	if !f.Is(Subtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if f.Is(HalfCarry) || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if f.Is(HalfCarry) {
			a -= 0x06
		}
	}
	return a, (f & Subtract) | flag(Zero, a == 0) | flag(Carry, carry)
}
