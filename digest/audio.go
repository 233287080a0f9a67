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
	"math"

	"github.com/gopherboy/gopherboy/hardware/apu"
)

// Audio fingerprints audio output. It implements the apu.Sink interface.
type Audio struct {
	digest  [sha1.Size]byte
	buffer  []byte
	samples int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

func (dig *Audio) String() string {
	return fmt.Sprintf("%s [%d samples]", dig.Hash(), dig.samples)
}

// Hash implements the digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.samples = 0
}

// Samples returns the number of samples in the digest.
func (dig *Audio) Samples() int {
	return dig.samples
}

// PushSamples implements the apu.Sink interface. Each batch is added to the
// digest along with the previous digest value.
func (dig *Audio) PushSamples(samples []apu.Sample) error {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	for _, s := range samples {
		dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, math.Float32bits(s.Left))
		dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, math.Float32bits(s.Right))
	}
	dig.digest = sha1.Sum(dig.buffer)
	dig.samples += len(samples)
	return nil
}
