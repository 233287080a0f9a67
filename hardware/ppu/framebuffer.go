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

package ppu

import (
	"image"
	"image/color"
)

// Dimensions of the LCD in pixels.
const (
	Width  = 160
	Height = 144
)

// FrameBuffer is a complete frame. Each entry is an ARGB colour. Pixels are
// stored in rows from the top-left of the screen.
type FrameBuffer [Width * Height]uint32

// Pixel returns the colour of the pixel at x, y.
func (fb *FrameBuffer) Pixel(x, y int) uint32 {
	return fb[y*Width+x]
}

// Fill the frame with a single colour.
func (fb *FrameBuffer) Fill(c uint32) {
	for i := range fb {
		fb[i] = c
	}
}

// Image returns a copy of the frame as an image.RGBA.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := range Height {
		for x := range Width {
			c := fb[y*Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c >> 16),
				G: uint8(c >> 8),
				B: uint8(c),
				A: uint8(c >> 24),
			})
		}
	}
	return img
}
