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

// lengthCounter silences a channel after a period set by the program. It is
// clocked at 256Hz by the frame sequencer.
type lengthCounter struct {
	max     int
	counter int
	enabled bool
}

// load the counter from the length bits of NRx1
func (l *lengthCounter) load(v int) {
	l.counter = l.max - v
}

// trigger reloads the counter if it has expired
func (l *lengthCounter) trigger() {
	if l.counter == 0 {
		l.counter = l.max
	}
}

// clock returns false if the channel should be disabled
func (l *lengthCounter) clock() bool {
	if !l.enabled || l.counter == 0 {
		return true
	}
	l.counter--
	return l.counter > 0
}

// envelope adjusts the volume of a channel. It is clocked at 64Hz by the
// frame sequencer.
type envelope struct {
	initial  uint8
	increase bool
	period   uint8

	volume uint8
	timer  uint8
}

// load the envelope parameters from NRx2. the parameters take effect on the
// next trigger
func (e *envelope) load(v uint8) {
	e.initial = v >> 4
	e.increase = v&0x08 == 0x08
	e.period = v & 0x07
}

func (e *envelope) trigger() {
	e.volume = e.initial
	e.timer = e.period
}

func (e *envelope) clock() {
	if e.period == 0 {
		return
	}
	if e.timer > 0 {
		e.timer--
	}
	if e.timer > 0 {
		return
	}
	e.timer = e.period
	if e.increase && e.volume < 15 {
		e.volume++
	} else if !e.increase && e.volume > 0 {
		e.volume--
	}
}

// dacEnabled returns true if the upper five bits of NRx2 are not all zero
func dacEnabled(nrx2 uint8) bool {
	return nrx2&0xf8 != 0
}

// dac converts the digital output of a channel (0 to 15) to an analog value
// in the range -1.0 to 1.0. a disabled DAC outputs zero.
func dac(enabled bool, v uint8) float32 {
	if !enabled {
		return 0
	}
	return float32(v)/7.5 - 1.0
}
