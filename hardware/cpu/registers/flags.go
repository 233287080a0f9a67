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

package registers

import "strings"

// Flags is the value of the F register.
type Flags uint8

// The four flags. The lower nibble of the F register is unused.
const (
	Zero      Flags = 0x80
	Subtract  Flags = 0x40
	HalfCarry Flags = 0x20
	Carry     Flags = 0x10

	flagsMask Flags = 0xf0
)

// Is returns true if all the flags in f are set.
func (fl Flags) Is(f Flags) bool {
	return fl&f == f
}

// Set or clear the flags in f.
func (fl *Flags) Set(f Flags, v bool) {
	if v {
		*fl |= f
	} else {
		*fl &^= f
	}
	*fl &= flagsMask
}

// flag returns f if v is true, otherwise zero.
func flag(f Flags, v bool) Flags {
	if v {
		return f
	}
	return 0
}

// String returns the flags as four characters. Upper case for set flags and
// lower case for clear flags.
func (fl Flags) String() string {
	s := strings.Builder{}
	for _, f := range []struct {
		flag Flags
		c    rune
	}{
		{Zero, 'z'}, {Subtract, 'n'}, {HalfCarry, 'h'}, {Carry, 'c'},
	} {
		if fl.Is(f.flag) {
			s.WriteRune(f.c - 'a' + 'A')
		} else {
			s.WriteRune(f.c)
		}
	}
	return s.String()
}
