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

package apu_test

import (
	"errors"
	"testing"

	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

type mockBus struct {
	regs    map[uint16]uint8
	changed map[uint16]bool
}

func newMockBus() *mockBus {
	return &mockBus{
		regs:    make(map[uint16]uint8),
		changed: make(map[uint16]bool),
	}
}

func (mem *mockBus) ChipRead(reg uint16) uint8 { return mem.regs[reg] }
func (mem *mockBus) ChipWrite(reg uint16, data uint8) { mem.regs[reg] = data }
func (mem *mockBus) ChipHasChanged(reg uint16) bool { return mem.changed[reg] }

func (mem *mockBus) write(reg uint16, data uint8) {
	mem.regs[reg] = data
	mem.changed[reg] = true
}

type countingSink struct {
	batches int
	samples []apu.Sample
}

func (s *countingSink) PushSamples(samples []apu.Sample) error {
	s.batches++
	s.samples = append(s.samples, samples...)
	return nil
}

type failingSink struct {
	calls int
}

func (s *failingSink) PushSamples(samples []apu.Sample) error {
	s.calls++
	return errors.New("device unplugged")
}

func TestNewAPU(t *testing.T) {
	_, err := apu.NewAPU(logger.Allow, nil, 0, 512)
	test.ExpectFailure(t, err)
	_, err = apu.NewAPU(logger.Allow, nil, 44100, 0)
	test.ExpectFailure(t, err)
	_, err = apu.NewAPU(logger.Allow, nil, 44100, 512)
	test.ExpectSuccess(t, err)
}

func TestSampleRate(t *testing.T) {
	mem := newMockBus()
	sink := &countingSink{}
	a, err := apu.NewAPU(logger.Allow, sink, 44100, 100)
	test.DemandSuccess(t, err)
	a.Reset(mem)

	// one second of emulation produces exactly one second of samples
	a.Step(mem, apu.ClockRate)
	test.ExpectEquality(t, len(sink.samples), 44100)
	test.ExpectEquality(t, sink.batches, 441)

	// a partial batch is only delivered by Flush()
	a.Step(mem, apu.ClockRate/100)
	test.ExpectEquality(t, sink.batches, 445)
	a.Flush()
	test.ExpectEquality(t, sink.batches, 446)
	test.ExpectEquality(t, len(sink.samples), 44100+440)
}

func TestSilenceWhenOff(t *testing.T) {
	mem := newMockBus()
	sink := &countingSink{}
	a, err := apu.NewAPU(logger.Allow, sink, 32768, 32)
	test.DemandSuccess(t, err)
	a.Reset(mem)

	a.Step(mem, 10000)
	for _, s := range sink.samples {
		test.ExpectEquality(t, s, apu.Sample{})
	}
	test.ExpectFailure(t, a.Power())
}

func startSquare(t *testing.T, mem *mockBus, sink apu.Sink) *apu.APU {
	t.Helper()

	a, err := apu.NewAPU(logger.Allow, sink, 32768, 32)
	test.DemandSuccess(t, err)
	a.Reset(mem)

	mem.write(addresses.NR52, 0x80)
	mem.write(addresses.NR50, 0x77)
	mem.write(addresses.NR51, 0x11)
	mem.write(addresses.NR12, 0xf0)
	mem.write(addresses.NR11, 0xbf)
	mem.write(addresses.NR13, 0x00)
	mem.write(addresses.NR14, 0xc7)
	a.Sync(mem)
	clear(mem.changed)

	return a
}

func TestSquareChannel(t *testing.T) {
	mem := newMockBus()
	sink := &countingSink{}
	a := startSquare(t, mem, sink)
	test.ExpectSuccess(t, a.Power())

	a.Step(mem, 1)
	test.ExpectEquality(t, mem.regs[addresses.NR52], uint8(0x81))

	// the length counter was loaded with one and expires at the first
	// length clock of the frame sequencer
	a.Step(mem, 2047)
	test.ExpectEquality(t, mem.regs[addresses.NR52], uint8(0x80))

	var high, low bool
	for _, s := range sink.samples {
		test.ExpectSuccess(t, s.Left >= -1.0 && s.Left <= 1.0)
		test.ExpectEquality(t, s.Left, s.Right)
		if s.Left > 0 {
			high = true
		}
		if s.Left < 0 {
			low = true
		}
	}
	test.ExpectSuccess(t, high)
	test.ExpectSuccess(t, low)
}

func TestPowerOff(t *testing.T) {
	mem := newMockBus()
	a := startSquare(t, mem, nil)

	mem.write(addresses.NR52, 0x00)
	a.Sync(mem)
	test.ExpectFailure(t, a.Power())
	test.ExpectEquality(t, mem.regs[addresses.NR12], uint8(0x00))
	test.ExpectEquality(t, mem.regs[addresses.NR51], uint8(0x00))

	// writes are discarded while the power is off
	clear(mem.changed)
	mem.write(addresses.NR50, 0x77)
	a.Sync(mem)
	test.ExpectEquality(t, mem.regs[addresses.NR50], uint8(0x00))

	a.Step(mem, 1)
	test.ExpectEquality(t, mem.regs[addresses.NR52], uint8(0x00))
}

func TestMultiSink(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	bad := &failingSink{}

	ms := apu.NewMultiSink(logger.Allow, a, nil, bad, b)
	test.ExpectEquality(t, ms.Len(), 3)

	samples := []apu.Sample{{Left: 0.5, Right: -0.5}, {Left: 0.25, Right: 0.0}}
	test.ExpectSuccess(t, ms.PushSamples(samples))
	test.ExpectEquality(t, ms.Len(), 2)
	test.ExpectEquality(t, bad.calls, 1)

	test.ExpectSuccess(t, ms.PushSamples(samples))
	test.ExpectEquality(t, bad.calls, 1)
	test.ExpectEquality(t, a.batches, 2)
	test.ExpectEquality(t, b.batches, 2)
	test.ExpectEquality(t, len(b.samples), 4)
	test.ExpectEquality(t, b.samples[1], apu.Sample{Left: 0.25, Right: 0.0})

	// each sink has its own copy
	a.samples[0].Left = 1.0
	test.ExpectEquality(t, b.samples[0].Left, float32(0.5))
}

func TestAppendFloat32LE(t *testing.T) {
	b := apu.AppendFloat32LE([]byte{0xaa}, []apu.Sample{{Left: 1, Right: -2}})
	test.DemandEquality(t, len(b), 9)
	test.ExpectEquality(t, b[0], uint8(0xaa))

	// 1.0 is 0x3f800000 and -2.0 is 0xc0000000
	expected := []uint8{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xc0}
	for i, v := range expected {
		test.ExpectEquality(t, b[i+1], v)
	}
}
