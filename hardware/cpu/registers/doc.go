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

// Package registers implements the register file of the SM83 CPU and the
// arithmetic primitives that operate on it.
//
// The register file has eight 8-bit registers (A, F, B, C, D, E, H, L) which
// pair up as the 16-bit registers AF, BC, DE and HL, plus the 16-bit stack
// pointer and program counter. The F register holds only the four flags in
// its upper nibble. The lower nibble always reads as zero.
//
// The ALU functions in this package are pure. They take operand values and
// (where the operation preserves or consumes flags) the current flags, and
// return the result along with the new flags.
package registers
