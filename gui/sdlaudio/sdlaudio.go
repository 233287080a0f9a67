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

// Package sdlaudio outputs sound using SDL. The Audio type implements the
// apu.Sink interface.
//
// Samples are queued with the SDL audio queue rather than pulled by a
// callback. If the queue grows too long, because the emulation is running
// faster than the audio device, the batch is dropped.
package sdlaudio

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// size of one stereo float32 sample in bytes
const sampleSize = 8

// the number of batches that can be queued before new batches are dropped
const maxQueuedBatches = 4

// Audio implements the apu.Sink interface.
type Audio struct {
	perm logger.Permission

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buf       []byte
	maxQueued uint32
	dropped   int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(perm logger.Permission, sampleRate int, bufferSize int) (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 2,
		Samples:  uint16(bufferSize),
	}

	aud := &Audio{
		perm:      perm,
		maxQueued: uint32(bufferSize * sampleSize * maxQueuedBatches),
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	logger.Logf(perm, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(perm, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// PushSamples implements the apu.Sink interface.
func (aud *Audio) PushSamples(samples []apu.Sample) error {
	if sdl.GetQueuedAudioSize(aud.id) > aud.maxQueued {
		aud.dropped++
		return nil
	}

	aud.buf = apu.AppendFloat32LE(aud.buf[:0], samples)
	err := sdl.QueueAudio(aud.id, aud.buf)
	if err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}
	return nil
}

// Close the audio device.
func (aud *Audio) Close() {
	if aud.dropped > 0 {
		logger.Logf(aud.perm, "sdlaudio", "%d batches dropped", aud.dropped)
	}
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
