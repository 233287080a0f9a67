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

import (
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
)

// the output level of the wave channel is applied as a right shift
var waveShift = [4]uint8{4, 0, 1, 2}

// channel 3 plays 32 four-bit samples from wave RAM
type wave struct {
	enabled bool
	dacOn   bool

	length lengthCounter

	level    uint8
	freq     uint16
	timer    int
	position int
	sample   uint8
}

func newWave() wave {
	return wave{length: lengthCounter{max: 256}}
}

func (wv *wave) reset() {
	*wv = newWave()
}

func (wv *wave) period() int {
	return (2048 - int(wv.freq)) * 2
}

func (wv *wave) sync(mem chipbus.Memory, force bool) {
	changed := func(reg uint16) bool {
		return force || mem.ChipHasChanged(reg)
	}

	if changed(addresses.NR30) {
		wv.dacOn = mem.ChipRead(addresses.NR30)&0x80 == 0x80
		if !wv.dacOn {
			wv.enabled = false
		}
	}

	if changed(addresses.NR31) {
		wv.length.load(int(mem.ChipRead(addresses.NR31)))
	}

	if changed(addresses.NR32) {
		wv.level = (mem.ChipRead(addresses.NR32) >> 5) & 0x03
	}

	if changed(addresses.NR33) || changed(addresses.NR34) {
		wv.freq = uint16(mem.ChipRead(addresses.NR34)&0x07)<<8 | uint16(mem.ChipRead(addresses.NR33))
	}

	if changed(addresses.NR34) {
		v := mem.ChipRead(addresses.NR34)
		wv.length.enabled = v&0x40 == 0x40
		if !force && v&0x80 == 0x80 {
			wv.trigger()
		}
	}
}

func (wv *wave) trigger() {
	wv.enabled = wv.dacOn
	wv.length.trigger()
	wv.timer = wv.period()
	wv.position = 0
}

func (wv *wave) clockLength() {
	if !wv.length.clock() {
		wv.enabled = false
	}
}

func (wv *wave) tick(mem chipbus.Memory, t int) {
	wv.timer -= t
	for wv.timer <= 0 {
		wv.timer += wv.period()
		wv.position = (wv.position + 1) & 0x1f

		b := mem.ChipRead(addresses.WaveRAM + uint16(wv.position/2))
		if wv.position&0x01 == 0 {
			wv.sample = b >> 4
		} else {
			wv.sample = b & 0x0f
		}
	}
}

func (wv *wave) output() float32 {
	var v uint8
	if wv.enabled {
		v = wv.sample >> waveShift[wv.level]
	}
	return dac(wv.dacOn, v)
}
