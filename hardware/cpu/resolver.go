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
	"errors"
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// ErrUnmappedOpcode is returned when the CPU encounters one of the eleven
// opcodes that have no defined behaviour on the SM83. The real hardware
// locks up in this situation.
var ErrUnmappedOpcode = errors.New("unmapped opcode")

// the opcode that prefixes the extended instruction set
const prefixCB = 0xcb

var (
	baseTable     [256]Handler
	extendedTable [256]Handler
)

func init() {
	for i := range 256 {
		baseTable[i] = decodeBase(uint8(i))
		extendedTable[i] = decodeExtended(uint8(i))
	}
}

// Resolve the opcode into a Handler. The memory is only accessed in the case
// of the 0xcb prefix, in which case the byte at the address pointed to by pc
// is read to select the extended instruction. The pc argument is not
// changed.
func Resolve(opcode uint8, mem cpubus.Memory, pc *uint16) (Handler, error) {
	if opcode == prefixCB {
		return extendedTable[mem.Read(*pc)], nil
	}

	h := baseTable[opcode]
	if !h.IsValid() {
		return Handler{}, fmt.Errorf("%w (%02x)", ErrUnmappedOpcode, opcode)
	}
	return h, nil
}
