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

package hardware

import (
	"fmt"

	"github.com/gopherboy/gopherboy/logger"
)

// writeTrace writes the state of the CPU before the next instruction. The
// format is the one used by the gameboy-doctor tool, allowing traces to be
// compared with other emulators:
//
//	A:01 F:B0 B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE PC:0100 PCMEM:00,C3,13,02
func (gb *GameBoy) writeTrace() {
	mc := gb.CPU
	pc := mc.PC
	_, err := fmt.Fprintf(gb.trace, "A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X\n",
		mc.A, uint8(mc.F), mc.B, mc.C, mc.D, mc.E, mc.H, mc.L, mc.SP, pc,
		gb.Mem.Peek(pc), gb.Mem.Peek(pc+1), gb.Mem.Peek(pc+2), gb.Mem.Peek(pc+3))
	if err != nil {
		logger.Logf(gb.env, "hardware", "trace disabled: %v", err)
		gb.trace = nil
	}
}
