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

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/paths"
	"github.com/gopherboy/gopherboy/test"
)

func TestPaths(t *testing.T) {
	// resource paths are relative to the working directory for development
	// builds so move to a temporary directory for the duration of the test
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy/foo/bar/baz")

	_, err = os.Stat(".gopherboy/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy/baz")

	pth, err = paths.ResourcePath("", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "POKEMON RED")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_POKEMON_RED_"))

	fn = paths.UniqueFilename("wav", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_2"))
}
