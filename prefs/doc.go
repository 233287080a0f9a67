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

// Package prefs implements the preferences system. Preference values are
// typed (Bool, String, Int, Float) and are safe to read and write from more
// than one goroutine.
//
// A Disk instance associates preference values with keys and saves them to a
// text file, one "key :: value" pair per line. A preferences file can contain
// the values for more than one Disk instance; saving one Disk never removes
// the entries written by another.
//
// Preferences can be overridden from the command line with the
// PushCommandLineStack() function. A value on the stack is used in preference
// to the value on disk the next time Load() is called.
package prefs
