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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/ppu"
)

// Video fingerprints frames of video output. The digest of each frame
// includes the digest of the previous frame.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

const pixelDepth = 4

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// room for the previous digest at the head of the data
		pixels: make([]byte, sha1.Size+ppu.Width*ppu.Height*pixelDepth),
	}
}

func (dig *Video) String() string {
	return fmt.Sprintf("%s [%d frames]", dig.Hash(), dig.frames)
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Frame adds the frame to the digest.
func (dig *Video) Frame(fb *ppu.FrameBuffer) {
	copy(dig.pixels, dig.digest[:])
	i := sha1.Size
	for _, c := range fb {
		binary.BigEndian.PutUint32(dig.pixels[i:], c)
		i += pixelDepth
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
