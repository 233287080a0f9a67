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

// opcodes are decoded using the octal fields of the opcode byte:
//
//	xx yyy zzz
//	   ppq
//
// this file builds the handler tables from those fields

func implied(mnemonic string, f func(mc *CPU) int) Handler {
	return Handler{Shape: Implied, Mnemonic: mnemonic, implied: f}
}

func impliedMem(mnemonic string, f func(mc *CPU, mem cpubus.Memory) int) Handler {
	return Handler{Shape: ImpliedMem, Mnemonic: mnemonic, impliedMem: f}
}

func opcode8(mnemonic string, f func(mc *CPU, op uint8) int) Handler {
	return Handler{Shape: Opcode8, Mnemonic: mnemonic, opcode8: f}
}

func opcode8Mem(mnemonic string, f func(mc *CPU, mem cpubus.Memory, op uint8) int) Handler {
	return Handler{Shape: Opcode8Mem, Mnemonic: mnemonic, opcode8Mem: f}
}

func operand16(mnemonic string, f func(mc *CPU, v uint16) int) Handler {
	return Handler{Shape: Operand16, Mnemonic: mnemonic, operand16: f}
}

func operand16Mem(mnemonic string, f func(mc *CPU, mem cpubus.Memory, v uint16) int) Handler {
	return Handler{Shape: Operand16Mem, Mnemonic: mnemonic, operand16Mem: f}
}

func operand24(mnemonic string, f func(mc *CPU, v uint32) int) Handler {
	return Handler{Shape: Operand24, Mnemonic: mnemonic, operand24: f}
}

func operand24Mem(mnemonic string, f func(mc *CPU, mem cpubus.Memory, v uint32) int) Handler {
	return Handler{Shape: Operand24Mem, Mnemonic: mnemonic, operand24Mem: f}
}

var conditionLabels = [4]string{"NZ", "Z", "NC", "C"}

func (mc *CPU) condition(cc uint8) bool {
	switch cc & 0x03 {
	case 0:
		return !mc.F.Is(registers.Zero)
	case 1:
		return mc.F.Is(registers.Zero)
	case 2:
		return !mc.F.Is(registers.Carry)
	}
	return mc.F.Is(registers.Carry)
}

var aluLabels = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}

func (mc *CPU) alu(op uint8, v uint8) {
	carry := mc.F.Is(registers.Carry)
	switch op & 0x07 {
	case 0:
		mc.A, mc.F = registers.Add8(mc.A, v, false)
	case 1:
		mc.A, mc.F = registers.Add8(mc.A, v, carry)
	case 2:
		mc.A, mc.F = registers.Sub8(mc.A, v, false)
	case 3:
		mc.A, mc.F = registers.Sub8(mc.A, v, carry)
	case 4:
		mc.A, mc.F = registers.And8(mc.A, v)
	case 5:
		mc.A, mc.F = registers.Xor8(mc.A, v)
	case 6:
		mc.A, mc.F = registers.Or8(mc.A, v)
	case 7:
		_, mc.F = registers.Sub8(mc.A, v, false)
	}
}

var rotateLabels = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func (mc *CPU) rotate(op uint8, v uint8) uint8 {
	var r uint8
	var f registers.Flags
	switch op & 0x07 {
	case 0:
		r, f = registers.RLC(v)
	case 1:
		r, f = registers.RRC(v)
	case 2:
		r, f = registers.RL(v, mc.F)
	case 3:
		r, f = registers.RR(v, mc.F)
	case 4:
		r, f = registers.SLA(v)
	case 5:
		r, f = registers.SRA(v)
	case 6:
		r, f = registers.Swap(v)
	case 7:
		r, f = registers.SRL(v)
	}
	mc.F = f
	return r
}

var indirectLabels = [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}

// indirectAddress returns the address for the LD (rr),A and LD A,(rr)
// instructions. HL is incremented or decremented as a side effect.
func (mc *CPU) indirectAddress(p uint8) uint16 {
	switch p & 0x03 {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	}
	hl := mc.HL()
	if p&0x03 == 2 {
		mc.SetHL(hl + 1)
	} else {
		mc.SetHL(hl - 1)
	}
	return hl
}

// relative jump offsets are signed
func relative(pc uint16, e uint8) uint16 {
	return pc + uint16(int8(e))
}

func decodeBase(op uint8) Handler {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07

	switch x {
	case 0:
		return decodeBlock0(y, z)
	case 1:
		if op == 0x76 {
			return implied("HALT", func(mc *CPU) int {
				mc.Halted = true
				return 1
			})
		}
		return decodeLoad(y, z)
	case 2:
		return decodeALU(y, z)
	}
	return decodeBlock3(y, z)
}

func decodeBlock0(y, z uint8) Handler {
	p := y >> 1
	q := y & 0x01

	switch z {
	case 0:
		switch y {
		case 0:
			return implied("NOP", func(mc *CPU) int {
				return 1
			})
		case 1:
			return operand24Mem("LD (nn),SP", func(mc *CPU, mem cpubus.Memory, v uint32) int {
				nn := immediate16(v)
				mem.Write(nn, uint8(mc.SP))
				mem.Write(nn+1, uint8(mc.SP>>8))
				return 5
			})
		case 2:
			// the byte following STOP is consumed but otherwise ignored
			return operand16("STOP", func(mc *CPU, v uint16) int {
				mc.Stopped = true
				return 1
			})
		case 3:
			return operand16("JR e", func(mc *CPU, v uint16) int {
				mc.PC = relative(mc.PC, uint8(v))
				return 3
			})
		}
		cc := y - 4
		return operand16(fmt.Sprintf("JR %s,e", conditionLabels[cc]), func(mc *CPU, v uint16) int {
			if mc.condition(cc) {
				mc.PC = relative(mc.PC, uint8(v))
				return 3
			}
			return 2
		})

	case 1:
		if q == 0 {
			return operand24(fmt.Sprintf("LD %s,nn", registers.Label16(p)), func(mc *CPU, v uint32) int {
				mc.Set16(p, immediate16(v))
				return 3
			})
		}
		return opcode8(fmt.Sprintf("ADD HL,%s", registers.Label16(p)), func(mc *CPU, op uint8) int {
			var hl uint16
			hl, mc.F = registers.AddHL16(mc.HL(), mc.Get16(op>>4), mc.F)
			mc.SetHL(hl)
			return 2
		})

	case 2:
		if q == 0 {
			return opcode8Mem(fmt.Sprintf("LD %s,A", indirectLabels[p]), func(mc *CPU, mem cpubus.Memory, op uint8) int {
				mem.Write(mc.indirectAddress(op>>4), mc.A)
				return 2
			})
		}
		return opcode8Mem(fmt.Sprintf("LD A,%s", indirectLabels[p]), func(mc *CPU, mem cpubus.Memory, op uint8) int {
			mc.A = mem.Read(mc.indirectAddress(op >> 4))
			return 2
		})

	case 3:
		if q == 0 {
			return opcode8(fmt.Sprintf("INC %s", registers.Label16(p)), func(mc *CPU, op uint8) int {
				mc.Set16(op>>4, mc.Get16(op>>4)+1)
				return 2
			})
		}
		return opcode8(fmt.Sprintf("DEC %s", registers.Label16(p)), func(mc *CPU, op uint8) int {
			mc.Set16(op>>4, mc.Get16(op>>4)-1)
			return 2
		})

	case 4:
		if y == registers.IndirectHL {
			return impliedMem("INC (HL)", func(mc *CPU, mem cpubus.Memory) int {
				var v uint8
				v, mc.F = registers.Inc8(mem.Read(mc.HL()), mc.F)
				mem.Write(mc.HL(), v)
				return 3
			})
		}
		return opcode8(fmt.Sprintf("INC %s", registers.Label8(y)), func(mc *CPU, op uint8) int {
			var v uint8
			v, mc.F = registers.Inc8(mc.Get8(op>>3), mc.F)
			mc.Set8(op>>3, v)
			return 1
		})

	case 5:
		if y == registers.IndirectHL {
			return impliedMem("DEC (HL)", func(mc *CPU, mem cpubus.Memory) int {
				var v uint8
				v, mc.F = registers.Dec8(mem.Read(mc.HL()), mc.F)
				mem.Write(mc.HL(), v)
				return 3
			})
		}
		return opcode8(fmt.Sprintf("DEC %s", registers.Label8(y)), func(mc *CPU, op uint8) int {
			var v uint8
			v, mc.F = registers.Dec8(mc.Get8(op>>3), mc.F)
			mc.Set8(op>>3, v)
			return 1
		})

	case 6:
		if y == registers.IndirectHL {
			return operand16Mem("LD (HL),n", func(mc *CPU, mem cpubus.Memory, v uint16) int {
				mem.Write(mc.HL(), uint8(v))
				return 3
			})
		}
		return operand16(fmt.Sprintf("LD %s,n", registers.Label8(y)), func(mc *CPU, v uint16) int {
			mc.Set8(uint8(v>>8)>>3, uint8(v))
			return 2
		})
	}

	// z == 7 are the accumulator and flag operations
	switch y {
	case 0:
		return implied("RLCA", func(mc *CPU) int {
			mc.A, mc.F = registers.RLC(mc.A)
			mc.F.Set(registers.Zero, false)
			return 1
		})
	case 1:
		return implied("RRCA", func(mc *CPU) int {
			mc.A, mc.F = registers.RRC(mc.A)
			mc.F.Set(registers.Zero, false)
			return 1
		})
	case 2:
		return implied("RLA", func(mc *CPU) int {
			mc.A, mc.F = registers.RL(mc.A, mc.F)
			mc.F.Set(registers.Zero, false)
			return 1
		})
	case 3:
		return implied("RRA", func(mc *CPU) int {
			mc.A, mc.F = registers.RR(mc.A, mc.F)
			mc.F.Set(registers.Zero, false)
			return 1
		})
	case 4:
		return implied("DAA", func(mc *CPU) int {
			mc.A, mc.F = registers.DAA(mc.A, mc.F)
			return 1
		})
	case 5:
		return implied("CPL", func(mc *CPU) int {
			mc.A = ^mc.A
			mc.F.Set(registers.Subtract|registers.HalfCarry, true)
			return 1
		})
	case 6:
		return implied("SCF", func(mc *CPU) int {
			mc.F.Set(registers.Subtract|registers.HalfCarry, false)
			mc.F.Set(registers.Carry, true)
			return 1
		})
	}
	return implied("CCF", func(mc *CPU) int {
		mc.F.Set(registers.Subtract|registers.HalfCarry, false)
		mc.F.Set(registers.Carry, !mc.F.Is(registers.Carry))
		return 1
	})
}

func decodeLoad(y, z uint8) Handler {
	mnemonic := fmt.Sprintf("LD %s,%s", registers.Label8(y), registers.Label8(z))

	if z == registers.IndirectHL {
		return opcode8Mem(mnemonic, func(mc *CPU, mem cpubus.Memory, op uint8) int {
			mc.Set8(op>>3, mem.Read(mc.HL()))
			return 2
		})
	}
	if y == registers.IndirectHL {
		return opcode8Mem(mnemonic, func(mc *CPU, mem cpubus.Memory, op uint8) int {
			mem.Write(mc.HL(), mc.Get8(op))
			return 2
		})
	}
	return opcode8(mnemonic, func(mc *CPU, op uint8) int {
		mc.Set8(op>>3, mc.Get8(op))
		return 1
	})
}

func decodeALU(y, z uint8) Handler {
	mnemonic := fmt.Sprintf("%s%s", aluLabels[y], registers.Label8(z))

	if z == registers.IndirectHL {
		return opcode8Mem(mnemonic, func(mc *CPU, mem cpubus.Memory, op uint8) int {
			mc.alu(op>>3, mem.Read(mc.HL()))
			return 2
		})
	}
	return opcode8(mnemonic, func(mc *CPU, op uint8) int {
		mc.alu(op>>3, mc.Get8(op))
		return 1
	})
}

func decodeBlock3(y, z uint8) Handler {
	p := y >> 1
	q := y & 0x01

	switch z {
	case 0:
		switch y {
		case 4:
			return operand16Mem("LDH (n),A", func(mc *CPU, mem cpubus.Memory, v uint16) int {
				mem.Write(0xff00|uint16(uint8(v)), mc.A)
				return 3
			})
		case 5:
			return operand16("ADD SP,e", func(mc *CPU, v uint16) int {
				mc.SP, mc.F = registers.AddSP(mc.SP, int8(v))
				return 4
			})
		case 6:
			return operand16Mem("LDH A,(n)", func(mc *CPU, mem cpubus.Memory, v uint16) int {
				mc.A = mem.Read(0xff00 | uint16(uint8(v)))
				return 3
			})
		case 7:
			return operand16("LD HL,SP+e", func(mc *CPU, v uint16) int {
				var hl uint16
				hl, mc.F = registers.AddSP(mc.SP, int8(v))
				mc.SetHL(hl)
				return 3
			})
		}
		return opcode8Mem(fmt.Sprintf("RET %s", conditionLabels[y]), func(mc *CPU, mem cpubus.Memory, op uint8) int {
			if mc.condition(op >> 3) {
				mc.PC = mc.Pop(mem)
				return 5
			}
			return 2
		})

	case 1:
		if q == 0 {
			return opcode8Mem(fmt.Sprintf("POP %s", registers.LabelStack16(p)), func(mc *CPU, mem cpubus.Memory, op uint8) int {
				mc.SetStack16(op>>4, mc.Pop(mem))
				return 3
			})
		}
		switch p {
		case 0:
			return impliedMem("RET", func(mc *CPU, mem cpubus.Memory) int {
				mc.PC = mc.Pop(mem)
				return 4
			})
		case 1:
			return impliedMem("RETI", func(mc *CPU, mem cpubus.Memory) int {
				mc.PC = mc.Pop(mem)
				mc.IME = true
				mc.imePending = false
				return 4
			})
		case 2:
			return implied("JP HL", func(mc *CPU) int {
				mc.PC = mc.HL()
				return 1
			})
		}
		return implied("LD SP,HL", func(mc *CPU) int {
			mc.SP = mc.HL()
			return 2
		})

	case 2:
		switch y {
		case 4:
			return impliedMem("LD (C),A", func(mc *CPU, mem cpubus.Memory) int {
				mem.Write(0xff00|uint16(mc.C), mc.A)
				return 2
			})
		case 5:
			return operand24Mem("LD (nn),A", func(mc *CPU, mem cpubus.Memory, v uint32) int {
				mem.Write(immediate16(v), mc.A)
				return 4
			})
		case 6:
			return impliedMem("LD A,(C)", func(mc *CPU, mem cpubus.Memory) int {
				mc.A = mem.Read(0xff00 | uint16(mc.C))
				return 2
			})
		case 7:
			return operand24Mem("LD A,(nn)", func(mc *CPU, mem cpubus.Memory, v uint32) int {
				mc.A = mem.Read(immediate16(v))
				return 4
			})
		}
		cc := y
		return operand24(fmt.Sprintf("JP %s,nn", conditionLabels[cc]), func(mc *CPU, v uint32) int {
			if mc.condition(cc) {
				mc.PC = immediate16(v)
				return 4
			}
			return 3
		})

	case 3:
		switch y {
		case 0:
			return operand24("JP nn", func(mc *CPU, v uint32) int {
				mc.PC = immediate16(v)
				return 4
			})
		case 6:
			return implied("DI", func(mc *CPU) int {
				mc.IME = false
				mc.imePending = false
				return 1
			})
		case 7:
			return implied("EI", func(mc *CPU) int {
				if !mc.IME {
					mc.imePending = true
				}
				return 1
			})
		}

		// y == 1 is the 0xcb prefix which is handled by Resolve(). the
		// remaining values are unmapped
		return Handler{}

	case 4:
		if y > 3 {
			return Handler{}
		}
		cc := y
		return operand24Mem(fmt.Sprintf("CALL %s,nn", conditionLabels[cc]), func(mc *CPU, mem cpubus.Memory, v uint32) int {
			if mc.condition(cc) {
				mc.Push(mem, mc.PC)
				mc.PC = immediate16(v)
				return 6
			}
			return 3
		})

	case 5:
		if q == 0 {
			return opcode8Mem(fmt.Sprintf("PUSH %s", registers.LabelStack16(p)), func(mc *CPU, mem cpubus.Memory, op uint8) int {
				mc.Push(mem, mc.GetStack16(op>>4))
				return 4
			})
		}
		if p != 0 {
			return Handler{}
		}
		return operand24Mem("CALL nn", func(mc *CPU, mem cpubus.Memory, v uint32) int {
			mc.Push(mem, mc.PC)
			mc.PC = immediate16(v)
			return 6
		})

	case 6:
		return operand16(fmt.Sprintf("%sn", aluLabels[y]), func(mc *CPU, v uint16) int {
			mc.alu(uint8(v>>8)>>3, uint8(v))
			return 2
		})
	}

	return opcode8Mem(fmt.Sprintf("RST %02xh", y<<3), func(mc *CPU, mem cpubus.Memory, op uint8) int {
		mc.Push(mem, mc.PC)
		mc.PC = uint16(op & 0x38)
		return 4
	})
}

// decodeExtended creates the handler for the byte following the 0xcb prefix.
// the handler receives the value 0xcb<<8 | n
func decodeExtended(n uint8) Handler {
	x := n >> 6
	y := (n >> 3) & 0x07
	z := n & 0x07

	var mnemonic string
	switch x {
	case 0:
		mnemonic = fmt.Sprintf("%s %s", rotateLabels[y], registers.Label8(z))
	case 1:
		mnemonic = fmt.Sprintf("BIT %d,%s", y, registers.Label8(z))
	case 2:
		mnemonic = fmt.Sprintf("RES %d,%s", y, registers.Label8(z))
	case 3:
		mnemonic = fmt.Sprintf("SET %d,%s", y, registers.Label8(z))
	}

	if z == registers.IndirectHL {
		return operand16Mem(mnemonic, func(mc *CPU, mem cpubus.Memory, v uint16) int {
			n := uint8(v)
			bit := (n >> 3) & 0x07
			hl := mc.HL()
			d := mem.Read(hl)
			switch n >> 6 {
			case 0:
				mem.Write(hl, mc.rotate(bit, d))
			case 1:
				mc.F = registers.Bit(d, bit, mc.F)
				return 3
			case 2:
				mem.Write(hl, d&^(1<<bit))
			case 3:
				mem.Write(hl, d|(1<<bit))
			}
			return 4
		})
	}

	return operand16(mnemonic, func(mc *CPU, v uint16) int {
		n := uint8(v)
		bit := (n >> 3) & 0x07
		d := mc.Get8(n)
		switch n >> 6 {
		case 0:
			mc.Set8(n, mc.rotate(bit, d))
		case 1:
			mc.F = registers.Bit(d, bit, mc.F)
		case 2:
			mc.Set8(n, d&^(1<<bit))
		case 3:
			mc.Set8(n, d|(1<<bit))
		}
		return 2
	})
}
