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

// Package logger is the central log for the emulator. There is only ever one
// log and it is accessed through the package level functions.
//
// Log entries are made with a tag and a detail string. A tag is normally the
// name of the package or component making the entry:
//
//	logger.Log(env, "cartridge", "header checksum mismatch")
//
// Consecutive entries with the same tag and detail are folded into one entry
// with a repeat count.
//
// Whether an entry is made depends on the Permission argument. The
// environment package provides a Permission that only allows logging from the
// main emulation.
package logger
