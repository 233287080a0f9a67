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

package apu

import "github.com/gopherboy/gopherboy/hardware/memory/chipbus"

// duty cycle waveforms. bit 0 is the first step of the waveform
var dutyPatterns = [4]uint8{0x01, 0x81, 0x87, 0x7e}

// square wave channel. channel 1 has a frequency sweep
type square struct {
	// register addresses. nr0 is zero for the channel without sweep
	nr0, nr1, nr2, nr3, nr4 uint16

	enabled bool
	dacOn   bool

	length lengthCounter
	env    envelope

	duty  uint8
	freq  uint16
	timer int
	step  uint8

	sweep sweep
}

type sweep struct {
	period uint8
	negate bool
	shift  uint8

	enabled bool
	timer   uint8
	shadow  uint16
}

func newSquare(nr0, nr1, nr2, nr3, nr4 uint16) square {
	return square{
		nr0: nr0, nr1: nr1, nr2: nr2, nr3: nr3, nr4: nr4,
		length: lengthCounter{max: 64},
	}
}

func (sq *square) reset() {
	*sq = newSquare(sq.nr0, sq.nr1, sq.nr2, sq.nr3, sq.nr4)
}

// period of one waveform step in T-cycles
func (sq *square) period() int {
	return (2048 - int(sq.freq)) * 4
}

func (sq *square) sync(mem chipbus.Memory, force bool) {
	changed := func(reg uint16) bool {
		return force || mem.ChipHasChanged(reg)
	}

	if sq.nr0 != 0 && changed(sq.nr0) {
		v := mem.ChipRead(sq.nr0)
		sq.sweep.period = (v >> 4) & 0x07
		sq.sweep.negate = v&0x08 == 0x08
		sq.sweep.shift = v & 0x07
	}

	if changed(sq.nr1) {
		v := mem.ChipRead(sq.nr1)
		sq.duty = v >> 6
		sq.length.load(int(v & 0x3f))
	}

	if changed(sq.nr2) {
		v := mem.ChipRead(sq.nr2)
		sq.env.load(v)
		sq.dacOn = dacEnabled(v)
		if !sq.dacOn {
			sq.enabled = false
		}
	}

	if changed(sq.nr3) || changed(sq.nr4) {
		sq.freq = uint16(mem.ChipRead(sq.nr4)&0x07)<<8 | uint16(mem.ChipRead(sq.nr3))
	}

	if changed(sq.nr4) {
		v := mem.ChipRead(sq.nr4)
		sq.length.enabled = v&0x40 == 0x40
		if !force && v&0x80 == 0x80 {
			sq.trigger()
		}
	}
}

func (sq *square) trigger() {
	sq.enabled = sq.dacOn
	sq.length.trigger()
	sq.env.trigger()
	sq.timer = sq.period()

	if sq.nr0 != 0 {
		sq.sweep.shadow = sq.freq
		sq.sweep.timer = sq.sweep.period
		if sq.sweep.timer == 0 {
			sq.sweep.timer = 8
		}
		sq.sweep.enabled = sq.sweep.period != 0 || sq.sweep.shift != 0
		if sq.sweep.shift != 0 && sq.sweepCalculation() > 2047 {
			sq.enabled = false
		}
	}
}

func (sq *square) sweepCalculation() uint16 {
	d := sq.sweep.shadow >> sq.sweep.shift
	if sq.sweep.negate {
		return sq.sweep.shadow - d
	}
	return sq.sweep.shadow + d
}

// clocked at 128Hz by the frame sequencer
func (sq *square) clockSweep() {
	if sq.sweep.timer > 0 {
		sq.sweep.timer--
	}
	if sq.sweep.timer > 0 {
		return
	}

	sq.sweep.timer = sq.sweep.period
	if sq.sweep.timer == 0 {
		sq.sweep.timer = 8
	}

	if !sq.sweep.enabled || sq.sweep.period == 0 {
		return
	}

	f := sq.sweepCalculation()
	if f > 2047 {
		sq.enabled = false
		return
	}
	if sq.sweep.shift != 0 {
		sq.sweep.shadow = f
		sq.freq = f
		if sq.sweepCalculation() > 2047 {
			sq.enabled = false
		}
	}
}

func (sq *square) clockLength() {
	if !sq.length.clock() {
		sq.enabled = false
	}
}

// tick advances the waveform by the number of T-cycles
func (sq *square) tick(t int) {
	sq.timer -= t
	for sq.timer <= 0 {
		sq.timer += sq.period()
		sq.step = (sq.step + 1) & 0x07
	}
}

func (sq *square) output() float32 {
	var v uint8
	if sq.enabled && dutyPatterns[sq.duty]>>sq.step&0x01 == 0x01 {
		v = sq.env.volume
	}
	return dac(sq.dacOn, v)
}
