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
	"fmt"
	"slices"
	"strings"
)

// Palette maps the four shades of the LCD to ARGB colours. Shade 0 is the
// lightest.
type Palette [4]uint32

var palettes = map[string]Palette{
	"DMG":    {0xff9bbc0f, 0xff8bac0f, 0xff306230, 0xff0f380f},
	"Pocket": {0xffc4cfa1, 0xff8b956d, 0xff4d533c, 0xff1f1f1f},
	"Grey":   {0xffffffff, 0xffaaaaaa, 0xff555555, 0xff000000},
	"Light":  {0xff00b581, 0xff009a71, 0xff00694a, 0xff004f3b},
}

// DefaultPalette is the name of the palette used when no palette is
// specified.
const DefaultPalette = "DMG"

// PaletteNames returns the names of the built-in palettes in alphabetical
// order.
func PaletteNames() []string {
	n := make([]string, 0, len(palettes))
	for k := range palettes {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// PaletteByName returns the named palette. The name is not case sensitive.
func PaletteByName(name string) (Palette, error) {
	for k, p := range palettes {
		if strings.EqualFold(k, name) {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("ppu: unknown palette (%s)", name)
}
