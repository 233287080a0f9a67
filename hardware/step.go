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

// syncBus copies the state of the DMA engine to the memory bus. A write to
// the DMA register in the current step is observed, and the transfer
// restarted, every time this function is called.
func (gb *GameBoy) syncBus() {
	gb.DMA.Sync(gb.Mem)
	gb.Mem.SetDMAActive(gb.DMA.Active())
}

// stepChips advances the timer, serial port, DMA engine and video unit by the
// number of M-cycles. The bus is synchronised after the DMA and again after
// the video unit.
func (gb *GameBoy) stepChips(cycles int) {
	gb.Timer.Sync(gb.Mem)
	gb.Timer.Step(gb.Mem, cycles)
	gb.Serial.Sync(gb.Mem)
	gb.Serial.Step(gb.Mem, cycles)
	gb.DMA.Step(gb.Mem, cycles)
	gb.syncBus()

	gb.PPU.Sync(gb.Mem)
	gb.PPU.Step(gb.Mem, cycles)
	gb.syncBus()
}

// Step the emulation by one CPU instruction (or by one M-cycle if the CPU is
// halted). The order of operations:
//
//  1. update the joypad register from the input provider
//  2. execute one instruction taking c1 cycles. c1 is one if the CPU is halted
//  3. synchronise the bus
//  4. advance the timer, serial port and DMA by c1 cycles
//  5. synchronise the bus
//  6. advance the video unit by c1 cycles and synchronise the bus
//  7. resolve interrupts. if one is dispatched, taking c2 cycles, then
//     repeat steps 4 to 6 with c2
//  8. advance the audio unit by c1+c2 cycles
//  9. clear the register write flags of the bus and of the timer
//  10. reset the frame cycle counter if the LCD was turned on. otherwise add
//     c1+c2 to the frame cycle counter
//
// The only error returned by Step() is for an unmapped opcode, in which case
// the emulation should not continue.
func (gb *GameBoy) Step() error {
	gb.Joypad.Provide(gb.input)
	if gb.Joypad.Update(gb.Mem) {
		gb.CPU.Stopped = false
	}

	c1 := 1
	if !gb.CPU.Sleeping() {
		if gb.trace != nil {
			gb.writeTrace()
		}

		var err error
		c1, err = gb.CPU.ExecuteInstruction(gb.Mem)
		if err != nil {
			return err
		}
	}

	gb.syncBus()
	gb.stepChips(c1)

	c2 := gb.Interrupts.Resolve(gb.CPU, gb.Mem)
	if c2 > 0 {
		gb.stepChips(c2)
	}

	gb.APU.Sync(gb.Mem)
	gb.APU.Step(gb.Mem, c1+c2)

	gb.Mem.ClearTriggers()
	gb.Timer.ClearTriggers()

	if gb.PPU.ScreenTurnedOn() {
		gb.PPU.ClearScreenTurnedOn()
		gb.frameCycles = 0
	} else {
		gb.frameCycles += c1 + c2
	}

	return nil
}
