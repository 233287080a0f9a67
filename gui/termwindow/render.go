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
	"image"
	"strconv"

	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"golang.org/x/image/draw"
)

// fit returns the size of the image in character cells that fits in the
// terminal while keeping the aspect ratio of the LCD. The image is never
// larger than the LCD.
func fit(cols, rows int) (int, int) {
	cols = max(min(cols, ppu.Width), 2)
	rows = max(min(rows, ppu.Height/2), 1)

	// two pixels per row
	if cols*ppu.Height > rows*2*ppu.Width {
		cols = rows * 2 * ppu.Width / ppu.Height
	} else {
		rows = cols * ppu.Height / ppu.Width / 2
	}

	return max(cols, 1), max(rows, 1)
}

func writeColour(buf *bytes.Buffer, sgr string, r, g, b uint8) {
	buf.WriteString("\x1b[")
	buf.WriteString(sgr)
	buf.WriteString(";2;")
	buf.WriteString(strconv.Itoa(int(r)))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(int(g)))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(int(b)))
	buf.WriteByte('m')
}

// render the frame to buf in an area of cols by rows character cells
func render(buf *bytes.Buffer, fb *ppu.FrameBuffer, cols, rows int) {
	src := fb.Image()

	dst := src
	if cols != ppu.Width || rows*2 != ppu.Height {
		dst = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	for y := 0; y < rows*2; y += 2 {
		for x := range cols {
			top := dst.RGBAAt(x, y)
			bot := dst.RGBAAt(x, y+1)
			writeColour(buf, "38", top.R, top.G, top.B)
			writeColour(buf, "48", bot.R, bot.G, bot.B)
			buf.WriteString("▀")
		}
		buf.WriteString("\x1b[0m\r\n")
	}
}

// parseKeys converts bytes read from the terminal to keys. Arrow keys are
// sent by the terminal as escape sequences. An escape byte on its own is the
// escape key.
func parseKeys(b []byte) []gui.Key {
	var keys []gui.Key

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case 0x1b:
			if i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				switch b[i+2] {
				case 'A':
					keys = append(keys, gui.KeyUp)
				case 'B':
					keys = append(keys, gui.KeyDown)
				case 'C':
					keys = append(keys, gui.KeyRight)
				case 'D':
					keys = append(keys, gui.KeyLeft)
				}
				i += 2
				continue
			}
			keys = append(keys, gui.KeyEscape)
		case 'x', 'X':
			keys = append(keys, gui.KeyX)
		case 'z', 'Z':
			keys = append(keys, gui.KeyZ)
		case 's', 'S':
			keys = append(keys, gui.KeyS)
		case 'a', 'A':
			keys = append(keys, gui.KeyA)
		case 'q', 'Q':
			keys = append(keys, gui.KeyEscape)
		case 'p', 'P':
			keys = append(keys, gui.KeyF12)
		}
	}

	return keys
}
