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

// Package screenshot saves frames of the emulation as PNG files. The frame is
// scaled with nearest neighbour sampling so that the pixels remain sharp.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/paths"
	"golang.org/x/image/draw"
)

// Scale returns a copy of the frame scaled by the integer factor. A factor of
// less than one is treated as one.
func Scale(fb *ppu.FrameBuffer, scale int) *image.RGBA {
	src := fb.Image()
	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, ppu.Width*scale, ppu.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes the scaled frame to w in PNG format.
func Encode(w io.Writer, fb *ppu.FrameBuffer, scale int) error {
	err := png.Encode(w, Scale(fb, scale))
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}

// Save the frame to the named file.
func Save(fb *ppu.FrameBuffer, filename string, scale int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("screenshot: %w", err)
		}
	}()

	return Encode(f, fb, scale)
}

// Filename returns a unique filename in the screenshots resource directory.
func Filename(cartName string) (string, error) {
	fn, err := paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", cartName)+".png")
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return fn, nil
}
