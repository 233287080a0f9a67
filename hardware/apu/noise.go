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

var noiseDivisors = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// channel 4 outputs the low bit of a linear feedback shift register
type noise struct {
	enabled bool
	dacOn   bool

	length lengthCounter
	env    envelope

	shift   uint8
	narrow  bool
	divisor uint8
	timer   int
	lfsr    uint16
}

func newNoise() noise {
	return noise{
		length: lengthCounter{max: 64},
		lfsr:   0x7fff,
	}
}

func (ns *noise) reset() {
	*ns = newNoise()
}

func (ns *noise) period() int {
	return noiseDivisors[ns.divisor] << ns.shift
}

func (ns *noise) sync(mem chipbus.Memory, force bool) {
	changed := func(reg uint16) bool {
		return force || mem.ChipHasChanged(reg)
	}

	if changed(addresses.NR41) {
		ns.length.load(int(mem.ChipRead(addresses.NR41) & 0x3f))
	}

	if changed(addresses.NR42) {
		v := mem.ChipRead(addresses.NR42)
		ns.env.load(v)
		ns.dacOn = dacEnabled(v)
		if !ns.dacOn {
			ns.enabled = false
		}
	}

	if changed(addresses.NR43) {
		v := mem.ChipRead(addresses.NR43)
		ns.shift = v >> 4
		ns.narrow = v&0x08 == 0x08
		ns.divisor = v & 0x07
	}

	if changed(addresses.NR44) {
		v := mem.ChipRead(addresses.NR44)
		ns.length.enabled = v&0x40 == 0x40
		if !force && v&0x80 == 0x80 {
			ns.trigger()
		}
	}
}

func (ns *noise) trigger() {
	ns.enabled = ns.dacOn
	ns.length.trigger()
	ns.env.trigger()
	ns.timer = ns.period()
	ns.lfsr = 0x7fff
}

func (ns *noise) clockLength() {
	if !ns.length.clock() {
		ns.enabled = false
	}
}

func (ns *noise) tick(t int) {
	ns.timer -= t
	for ns.timer <= 0 {
		ns.timer += ns.period()

		x := (ns.lfsr & 0x01) ^ ((ns.lfsr >> 1) & 0x01)
		ns.lfsr = ns.lfsr>>1 | x<<14
		if ns.narrow {
			ns.lfsr = ns.lfsr&^0x40 | x<<6
		}
	}
}

func (ns *noise) output() float32 {
	var v uint8
	if ns.enabled && ns.lfsr&0x01 == 0 {
		v = ns.env.volume
	}
	return dac(ns.dacOn, v)
}
