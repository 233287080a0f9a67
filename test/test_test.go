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

package test_test

import (
	"errors"
	"testing"

	"github.com/gopherboy/gopherboy/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	var err error
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))

	test.ExpectEquality(t, 10, 5+5)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 59.7, 60.0, 0.01)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")
	r.Write([]byte("fghij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	// oldest bytes are dropped
	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")

	// a write longer than the ring keeps only its tail
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	cw := &test.CompareWriter{}
	test.ExpectSuccess(t, cw.Compare(""))
	cw.Write([]byte("gopher"))
	cw.Write([]byte("boy"))
	test.ExpectSuccess(t, cw.Compare("gopherboy"))
	cw.Clear()
	test.ExpectSuccess(t, cw.Compare(""))
}
