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

package main

import (
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/gui/otoaudio"
	"github.com/gopherboy/gopherboy/gui/sdlaudio"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/wavwriter"
)

// newAudioSink creates the sink for the audio device, the wav writer and any
// additional sinks. The returned function closes everything that was opened
// and should always be called. The sink is nil if there is nothing to send
// samples to.
func newAudioSink(env *environment.Environment, device string, wav string, extra ...apu.Sink) (apu.Sink, func(), error) {
	sampleRate := env.Prefs.SampleRate.Get().(int)
	bufferSize := env.Prefs.BufferSize.Get().(int)

	var sinks []apu.Sink
	var closers []func()

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch strings.ToLower(device) {
	case "sdl":
		aud, err := sdlaudio.NewAudio(env, sampleRate, bufferSize)
		if err != nil {
			return nil, closeAll, err
		}
		sinks = append(sinks, aud)
		closers = append(closers, aud.Close)
	case "oto":
		aud, err := otoaudio.NewAudio(env, sampleRate, bufferSize)
		if err != nil {
			return nil, closeAll, err
		}
		sinks = append(sinks, aud)
		closers = append(closers, aud.Close)
	case "none", "":
	default:
		return nil, closeAll, fmt.Errorf("unknown audio device (%s)", device)
	}

	if wav != "" {
		ww, err := wavwriter.New(env, wav, sampleRate)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		sinks = append(sinks, ww)
		closers = append(closers, func() {
			if err := ww.Close(); err != nil {
				logger.Log(env, "wavwriter", err.Error())
			}
		})
	}

	sinks = append(sinks, extra...)

	switch len(sinks) {
	case 0:
		return nil, closeAll, nil
	case 1:
		return sinks[0], closeAll, nil
	}
	return apu.NewMultiSink(env, sinks...), closeAll, nil
}
