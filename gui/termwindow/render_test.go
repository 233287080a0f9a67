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

package termwindow

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/test"
)

func TestFit(t *testing.T) {
	cols, rows := fit(200, 100)
	test.ExpectEquality(t, cols, ppu.Width)
	test.ExpectEquality(t, rows, ppu.Height/2)

	// limited by height
	cols, rows = fit(200, 36)
	test.ExpectEquality(t, rows, 36)
	test.ExpectEquality(t, cols, 80)

	// limited by width
	cols, rows = fit(80, 100)
	test.ExpectEquality(t, cols, 80)
	test.ExpectEquality(t, rows, 36)
}

func TestRender(t *testing.T) {
	var fb ppu.FrameBuffer
	fb.Fill(0xff0f380f)

	var buf bytes.Buffer
	render(&buf, &fb, ppu.Width, ppu.Height/2)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	test.ExpectEquality(t, len(lines), ppu.Height/2)
	test.ExpectEquality(t, strings.Count(lines[0], "▀"), ppu.Width)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "\x1b[38;2;15;56;15m\x1b[48;2;15;56;15m▀"))

	buf.Reset()
	render(&buf, &fb, 40, 18)
	lines = strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	test.ExpectEquality(t, len(lines), 18)
	test.ExpectEquality(t, strings.Count(lines[0], "▀"), 40)
}

func TestParseKeys(t *testing.T) {
	keys := parseKeys([]byte("xz\x1b[A\x1b[Dq"))
	expected := []gui.Key{gui.KeyX, gui.KeyZ, gui.KeyUp, gui.KeyLeft, gui.KeyEscape}
	test.DemandEquality(t, len(keys), len(expected))
	for i := range expected {
		test.ExpectEquality(t, keys[i], expected[i])
	}

	keys = parseKeys([]byte{0x1b})
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], gui.KeyEscape)

	test.ExpectEquality(t, len(parseKeys([]byte("123"))), 0)
}
