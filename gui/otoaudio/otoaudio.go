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

// Package otoaudio outputs sound using the oto library. The Audio type
// implements the apu.Sink interface.
//
// The oto player pulls data from a ring buffer. The emulation pushes
// batches of samples into the ring. Samples that do not fit in the ring are
// dropped and the player is given silence when the ring is empty.
package otoaudio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/logger"
)

// size of one stereo float32 sample in bytes
const sampleSize = 8

// the number of batches held by the ring buffer
const ringBatches = 4

// Audio implements the apu.Sink interface.
type Audio struct {
	perm   logger.Permission
	ctx    *oto.Context
	player *oto.Player
	ring   *ring
	buf    []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(perm logger.Permission, sampleRate int, bufferSize int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("otoaudio: %w", err)
	}
	<-ready

	aud := &Audio{
		perm: perm,
		ctx:  ctx,
		ring: newRing(bufferSize * sampleSize * ringBatches),
	}
	aud.player = ctx.NewPlayer(aud.ring)
	aud.player.Play()

	logger.Logf(perm, "otoaudio", "frequency: %d samples/sec", sampleRate)

	return aud, nil
}

// PushSamples implements the apu.Sink interface.
func (aud *Audio) PushSamples(samples []apu.Sample) error {
	if err := aud.ctx.Err(); err != nil {
		return fmt.Errorf("otoaudio: %w", err)
	}
	aud.buf = apu.AppendFloat32LE(aud.buf[:0], samples)
	aud.ring.Write(aud.buf)
	return nil
}

// Close the audio player.
func (aud *Audio) Close() {
	if n := aud.ring.Dropped(); n > 0 {
		logger.Logf(aud.perm, "otoaudio", "%d bytes dropped", n)
	}
	if err := aud.player.Close(); err != nil {
		logger.Logf(aud.perm, "otoaudio", "%v", err)
	}
}
