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

// MBC1 has a five bit bank register and a two bit register that either
// extends the bank number or selects the RAM bank, depending on the mode.
type mbc1 struct {
	bankLow  uint8
	bankHigh uint8

	// in mode 1 the two bit register also applies to the 0x0000 to 0x3fff
	// range and selects the RAM bank
	mode uint8
}

func (m mbc1) zeroBank() int {
	if m.mode == 1 {
		return int(m.bankHigh) << 5
	}
	return 0
}

func (cart *Cartridge) writeMBC1(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = isEnable(data)
	case address < 0x4000:
		cart.mbc1.bankLow = data & 0x1f
		if cart.mbc1.bankLow == 0 {
			cart.mbc1.bankLow = 1
		}
	case address < 0x6000:
		cart.mbc1.bankHigh = data & 0x03
	default:
		cart.mbc1.mode = data & 0x01
	}

	cart.romBank = int(cart.mbc1.bankHigh)<<5 | int(cart.mbc1.bankLow)
	if cart.mbc1.mode == 1 {
		cart.ramBank = int(cart.mbc1.bankHigh)
	} else {
		cart.ramBank = 0
	}
}
