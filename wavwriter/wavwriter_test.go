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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
	"github.com/gopherboy/gopherboy/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	_, err := wavwriter.New(logger.Allow, fn, 0)
	test.ExpectFailure(t, err)

	aw, err := wavwriter.New(logger.Allow, fn, 22050)
	test.DemandSuccess(t, err)
	var _ apu.Sink = aw

	test.ExpectSuccess(t, aw.PushSamples([]apu.Sample{{Left: 1, Right: -1}, {Left: 0, Right: 0.5}}))
	test.ExpectSuccess(t, aw.PushSamples([]apu.Sample{{Left: 2, Right: -2}}))
	test.ExpectEquality(t, aw.Samples(), 3)

	test.DemandSuccess(t, aw.Close())
	test.ExpectSuccess(t, aw.Close())
	test.ExpectFailure(t, aw.PushSamples([]apu.Sample{{}}))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(22050))
	test.ExpectEquality(t, dec.NumChans, uint16(2))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.DemandEquality(t, len(buf.Data), 6)

	// out of range samples are clamped
	expected := []int{32767, -32767, 0, 16383, 32767, -32767}
	for i, v := range expected {
		test.ExpectEquality(t, buf.Data[i], v)
	}
}
