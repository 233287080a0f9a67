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

// Package paths contains functions to prepare paths to the resources used by
// the emulator: the preferences file, screenshots, recordings and the like.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate configuration directory:
//
//	p, err := paths.ResourcePath("screenshots", "tetris.png")
//
// For release builds (the "release" build tag) the base is the gopherboy
// directory inside os.UserConfigDir(). Otherwise the base is ".gopherboy" in
// the current working directory, which keeps development builds away from a
// user's real configuration. In both cases the directory (and any
// sub-directory) is created if it does not exist.
package paths
