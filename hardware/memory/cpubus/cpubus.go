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

// Package cpubus defines the view of memory seen by the CPU.
package cpubus

// Memory is the interface the CPU uses to access the bus. Reads and writes
// never fail. Access to unmapped or disabled memory is resolved by the bus
// itself, in the same way as the hardware.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
