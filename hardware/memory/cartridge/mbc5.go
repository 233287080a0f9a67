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

package cartridge

// MBC5 has a nine bit bank register, split across two addresses, and a four
// bit RAM bank register. Unlike the other controllers, bank zero can be
// mapped into the 0x4000 to 0x7fff range.
func (cart *Cartridge) writeMBC5(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = isEnable(data)
	case address < 0x3000:
		cart.romBank = cart.romBank&0x100 | int(data)
	case address < 0x4000:
		cart.romBank = cart.romBank&0xff | int(data&0x01)<<8
	case address < 0x6000:
		cart.ramBank = int(data & 0x0f)
	}
}
