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

package otoaudio

import (
	"testing"

	"github.com/gopherboy/gopherboy/test"
)

func TestRing(t *testing.T) {
	r := newRing(8)

	n, err := r.Write([]byte{1, 2, 3, 4, 5})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, r.Len(), 5)

	p := make([]byte, 3)
	n, err = r.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, string(p), string([]byte{1, 2, 3}))

	// wraps around the end of the buffer
	r.Write([]byte{6, 7, 8, 9, 10})
	test.ExpectEquality(t, r.Len(), 7)

	// only one byte of space remains
	r.Write([]byte{11, 12})
	test.ExpectEquality(t, r.Len(), 8)
	test.ExpectEquality(t, r.Dropped(), 1)

	p = make([]byte, 10)
	n, _ = r.Read(p)
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, string(p), string([]byte{4, 5, 6, 7, 8, 9, 10, 11, 0, 0}))
	test.ExpectEquality(t, r.Len(), 0)

	// empty ring produces silence
	p[0] = 0xff
	r.Read(p)
	test.ExpectEquality(t, p[0], uint8(0))
}
