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

// Package wavwriter allows writing of audio data to disk as a WAV file. The
// WavWriter type implements the apu.Sink interface and so can be used
// alongside (or instead of) a real audio device.
//
// Samples are encoded as 16-bit stereo PCM as they arrive. The file is not
// valid until Close() has been called.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/logger"
)

const (
	bitDepth    = 16
	numChannels = 2

	// WAVE_FORMAT_PCM
	pcmFormat = 1
)

// WavWriter implements the apu.Sink interface.
type WavWriter struct {
	perm     logger.Permission
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	samples  int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(perm logger.Permission, filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("wavwriter: %w", err)
	}

	aw := &WavWriter{
		perm:     perm,
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, bitDepth, numChannels, pcmFormat),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: numChannels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}

	logger.Logf(perm, "wavwriter", "writing audio to %s", filename)

	return aw, nil
}

func (aw *WavWriter) String() string {
	return fmt.Sprintf("%s [%d samples]", aw.filename, aw.samples)
}

// quantise a sample in the range -1 to 1 to a signed 16-bit value
func quantise(v float32) int {
	v = max(-1, min(1, v))
	return int(v * 32767)
}

// PushSamples implements the apu.Sink interface.
func (aw *WavWriter) PushSamples(samples []apu.Sample) error {
	if aw.enc == nil {
		return fmt.Errorf("wavwriter: %s is closed", aw.filename)
	}

	aw.buf.Data = aw.buf.Data[:0]
	for _, s := range samples {
		aw.buf.Data = append(aw.buf.Data, quantise(s.Left), quantise(s.Right))
	}

	err := aw.enc.Write(aw.buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	aw.samples += len(samples)

	return nil
}

// Samples returns the number of stereo samples written.
func (aw *WavWriter) Samples() int {
	return aw.samples
}

// Close finalises the WAV header and closes the file. Calling Close() more
// than once has no effect.
func (aw *WavWriter) Close() (rerr error) {
	if aw.enc == nil {
		return nil
	}

	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	err := aw.enc.Close()
	aw.enc = nil
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	logger.Logf(aw.perm, "wavwriter", "%d samples written to %s", aw.samples, aw.filename)

	return nil
}
