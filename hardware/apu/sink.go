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
	"encoding/binary"
	"math"

	"github.com/gopherboy/gopherboy/logger"
)

// Sample is a single stereo sample. Values are in the range -1.0 to 1.0.
type Sample struct {
	Left  float32
	Right float32
}

// AppendFloat32LE appends the samples to dst as interleaved 32-bit little
// endian floats, left channel first. This is the format expected by most
// audio devices.
func AppendFloat32LE(dst []byte, samples []Sample) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s.Left))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s.Right))
	}
	return dst
}

// Sink receives batches of samples. The slice is only valid for the
// duration of the call and must be copied if it is to be retained.
//
// PushSamples must not block for longer than it takes to copy the samples.
type Sink interface {
	PushSamples(samples []Sample) error
}

// MultiSink delivers every batch to more than one sink. Each sink receives
// its own copy of the batch. A sink that returns an error is removed and
// will not receive any more samples.
type MultiSink struct {
	perm  logger.Permission
	sinks []Sink
	buf   []Sample
}

// NewMultiSink is the preferred method of initialisation for the MultiSink
// type. Nil sinks are ignored.
func NewMultiSink(perm logger.Permission, sinks ...Sink) *MultiSink {
	ms := &MultiSink{perm: perm}
	for _, s := range sinks {
		if s != nil {
			ms.sinks = append(ms.sinks, s)
		}
	}
	return ms
}

// Len returns the number of sinks still attached.
func (ms *MultiSink) Len() int {
	return len(ms.sinks)
}

// PushSamples implements the Sink interface. It never returns an error.
func (ms *MultiSink) PushSamples(samples []Sample) error {
	n := ms.sinks[:0]
	for _, s := range ms.sinks {
		ms.buf = append(ms.buf[:0], samples...)
		if err := s.PushSamples(ms.buf); err != nil {
			logger.Logf(ms.perm, "audio", "removing sink: %v", err)
			continue
		}
		n = append(n, s)
	}
	clear(ms.sinks[len(n):])
	ms.sinks = n
	return nil
}
