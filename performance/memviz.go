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

package performance

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
)

// MemvizDump writes a graphviz description of the data structure to the
// file. The GameBoy type is the intended argument but any value can be
// dumped.
func MemvizDump(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("performance: memviz: %w", err)
	}
	memviz.Map(f, v)
	if err := f.Close(); err != nil {
		return fmt.Errorf("performance: memviz: %w", err)
	}
	return nil
}
