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
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
	"github.com/gopherboy/gopherboy/logger"
)

// ClockRate is the number of M-cycles per second.
const ClockRate = 1048576

// the frame sequencer is clocked every 2048 M-cycles (512Hz)
const sequencerPeriod = ClockRate / 512

// APU implements the audio processing unit.
type APU struct {
	perm logger.Permission
	sink Sink

	sampleRate int
	batch      []Sample

	power bool

	ch1 square
	ch2 square
	ch3 wave
	ch4 noise

	// NR50 and NR51
	volume  uint8
	routing uint8

	sequencerCycles int
	sequencerStep   int

	// box filter accumulating the mixed output between output samples
	rateAccumulator int
	sumLeft         float32
	sumRight        float32
	sumCount        int
}

// NewAPU is the preferred method of initialisation for the APU type. The sink
// can be nil. Samples will be produced at sampleRate and delivered to the
// sink in batches of bufferSize samples.
func NewAPU(perm logger.Permission, sink Sink, sampleRate int, bufferSize int) (*APU, error) {
	if sampleRate <= 0 || sampleRate > ClockRate {
		return nil, fmt.Errorf("apu: invalid sample rate (%d)", sampleRate)
	}
	if bufferSize <= 0 {
		return nil, fmt.Errorf("apu: invalid buffer size (%d)", bufferSize)
	}

	return &APU{
		perm:       perm,
		sink:       sink,
		sampleRate: sampleRate,
		batch:      make([]Sample, 0, bufferSize),
		ch1:        newSquare(addresses.NR10, addresses.NR11, addresses.NR12, addresses.NR13, addresses.NR14),
		ch2:        newSquare(0, addresses.NR21, addresses.NR22, addresses.NR23, addresses.NR24),
		ch3:        newWave(),
		ch4:        newNoise(),
	}, nil
}

func (apu *APU) String() string {
	return fmt.Sprintf("power=%v NR50=%02x NR51=%02x ch=%04b", apu.power, apu.volume, apu.routing, apu.status())
}

// Reset the APU. The register state is taken from the bus.
func (apu *APU) Reset(mem chipbus.Memory) {
	apu.ch1.reset()
	apu.ch2.reset()
	apu.ch3.reset()
	apu.ch4.reset()
	apu.sequencerCycles = 0
	apu.sequencerStep = 0
	apu.rateAccumulator = 0
	apu.sumLeft = 0
	apu.sumRight = 0
	apu.sumCount = 0
	apu.batch = apu.batch[:0]

	apu.power = mem.ChipRead(addresses.NR52)&0x80 == 0x80
	apu.syncChannels(mem, true)
}

// Power returns true if the APU is switched on.
func (apu *APU) Power() bool {
	return apu.power
}

// status returns the enabled state of the four channels as it appears in the
// lower bits of NR52.
func (apu *APU) status() uint8 {
	var s uint8
	if apu.ch1.enabled {
		s |= 0x01
	}
	if apu.ch2.enabled {
		s |= 0x02
	}
	if apu.ch3.enabled {
		s |= 0x04
	}
	if apu.ch4.enabled {
		s |= 0x08
	}
	return s
}

// Sync the APU with the registers on the bus.
func (apu *APU) Sync(mem chipbus.Memory) {
	power := mem.ChipRead(addresses.NR52)&0x80 == 0x80
	if power != apu.power {
		apu.power = power
		if power {
			apu.sequencerStep = 0
			apu.sequencerCycles = 0
		} else {
			apu.ch1.reset()
			apu.ch2.reset()
			apu.ch3.reset()
			apu.ch4.reset()
			for reg := uint16(addresses.NR10); reg <= addresses.NR51; reg++ {
				mem.ChipWrite(reg, 0)
			}
		}
	}

	// registers cannot be written while the APU is off
	if !apu.power {
		for reg := uint16(addresses.NR10); reg <= addresses.NR51; reg++ {
			if mem.ChipHasChanged(reg) {
				mem.ChipWrite(reg, 0)
			}
		}
		return
	}

	apu.syncChannels(mem, false)
}

func (apu *APU) syncChannels(mem chipbus.Memory, force bool) {
	apu.ch1.sync(mem, force)
	apu.ch2.sync(mem, force)
	apu.ch3.sync(mem, force)
	apu.ch4.sync(mem, force)
	apu.volume = mem.ChipRead(addresses.NR50)
	apu.routing = mem.ChipRead(addresses.NR51)
}

// Step the APU by the number of M-cycles. Completed batches of samples are
// pushed to the sink.
func (apu *APU) Step(mem chipbus.Memory, cycles int) {
	for range cycles {
		if apu.power {
			apu.sequencerCycles++
			if apu.sequencerCycles >= sequencerPeriod {
				apu.sequencerCycles = 0
				apu.clockSequencer()
			}

			apu.ch1.tick(4)
			apu.ch2.tick(4)
			apu.ch3.tick(mem, 4)
			apu.ch4.tick(4)

			l, r := apu.mix()
			apu.sumLeft += l
			apu.sumRight += r
		}
		apu.sumCount++

		apu.rateAccumulator += apu.sampleRate
		if apu.rateAccumulator >= ClockRate {
			apu.rateAccumulator -= ClockRate
			apu.emit()
		}
	}

	nr52 := mem.ChipRead(addresses.NR52) & 0x80
	mem.ChipWrite(addresses.NR52, nr52|apu.status())
}

// the frame sequencer clocks the length counters at 256Hz, the sweep at
// 128Hz and the envelopes at 64Hz
func (apu *APU) clockSequencer() {
	switch apu.sequencerStep {
	case 0, 4:
		apu.clockLength()
	case 2, 6:
		apu.clockLength()
		apu.ch1.clockSweep()
	case 7:
		apu.ch1.env.clock()
		apu.ch2.env.clock()
		apu.ch4.env.clock()
	}
	apu.sequencerStep = (apu.sequencerStep + 1) & 0x07
}

func (apu *APU) clockLength() {
	apu.ch1.clockLength()
	apu.ch2.clockLength()
	apu.ch3.clockLength()
	apu.ch4.clockLength()
}

// mix the four channels into the left and right terminals. Each terminal is
// the average of the channels routed to it, scaled by the terminal volume.
func (apu *APU) mix() (float32, float32) {
	out := [4]float32{
		apu.ch1.output(),
		apu.ch2.output(),
		apu.ch3.output(),
		apu.ch4.output(),
	}

	var left, right float32
	for i, v := range out {
		if apu.routing&(0x10<<i) != 0 {
			left += v
		}
		if apu.routing&(0x01<<i) != 0 {
			right += v
		}
	}

	left = left / 4 * float32((apu.volume>>4)&0x07+1) / 8
	right = right / 4 * float32(apu.volume&0x07+1) / 8

	return left, right
}

func (apu *APU) emit() {
	var s Sample
	if apu.sumCount > 0 {
		s.Left = apu.sumLeft / float32(apu.sumCount)
		s.Right = apu.sumRight / float32(apu.sumCount)
	}
	apu.sumLeft = 0
	apu.sumRight = 0
	apu.sumCount = 0

	apu.batch = append(apu.batch, s)
	if len(apu.batch) == cap(apu.batch) {
		apu.push()
	}
}

func (apu *APU) push() {
	if apu.sink != nil && len(apu.batch) > 0 {
		if err := apu.sink.PushSamples(apu.batch); err != nil {
			logger.Logf(apu.perm, "audio", "removing sink: %v", err)
			apu.sink = nil
		}
	}
	apu.batch = apu.batch[:0]
}

// Flush pushes any samples waiting in an incomplete batch to the sink.
func (apu *APU) Flush() {
	apu.push()
}
