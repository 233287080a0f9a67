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

// Package test contains the helper functions used by the package tests of
// the emulator. The Expect functions report a failure and allow the test to
// continue. The Demand functions stop the test immediately.
//
// The success/failure functions understand bool, error and nil values. A nil
// value is treated as a success because a nil error indicates that nothing
// went wrong.
package test
