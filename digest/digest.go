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

// Package digest is used to create fingerprints of the emulation output. The
// fingerprints are used to check that changes to the emulation have not
// changed the video or audio output of a cartridge.
//
// Each new digest value is chained with the previous value, so the final
// value represents the entire output since the last reset.
package digest

// Digest implementations compute a fingerprint of emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
