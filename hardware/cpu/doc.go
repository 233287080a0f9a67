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

// Package cpu emulates the SM83 processor found in the Game Boy. Like all
// 8-bit processors of the era, the SM83 executes instructions according to
// the single byte value read from the address pointed to by the program
// counter. The opcode is resolved to a Handler which describes the shape of
// the instruction (how many trailing bytes it has and whether it touches
// the bus) and which performs the instruction when invoked.
//
// The 0xCB opcode is a prefix. The byte following the prefix selects one of
// 256 extended instructions, all of which are two bytes long. Resolve()
// peeks at that byte to decide which extended handler to return.
//
// ExecuteInstruction() fetches, resolves and invokes a single instruction
// and returns the number of machine cycles (M-cycles) it took. One M-cycle is
// four clock cycles. The caller is responsible for advancing the other chips
// in the system by the same number of cycles.
//
//	mc := cpu.NewCPU()
//	mc.Reset(true)
//
//	for {
//		cycles, err := mc.ExecuteInstruction(mem)
//		if err != nil {
//			return err
//		}
//		clock += cycles
//	}
//
// The CPU does not dispatch interrupts itself. The interrupts package
// inspects the IME field and the IE/IF registers after every instruction and
// uses Dispatch() to jump to an interrupt vector.
//
// The LastResult field can be inspected for information about the last
// instruction executed. Useful for tracing.
package cpu
