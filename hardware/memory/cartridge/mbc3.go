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

// MBC3 has a seven bit bank register and a register that selects either one
// of four RAM banks or one of the five RTC registers for the 0xa000 to 0xbfff
// range.
type mbc3 struct {
	// value written to the 0x4000 to 0x5fff range
	selected uint8

	// previous value written to the latch register. the clock is latched on
	// the 0x00 to 0x01 transition
	latch uint8

	rtc rtc
}

// values of the select register that map an RTC register.
const (
	rtcSelectFirst = 0x08
	rtcSelectLast  = 0x0c
)

func (m *mbc3) reset() {
	m.selected = 0
	m.latch = 0xff
}

func (cart *Cartridge) writeMBC3(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = isEnable(data)
	case address < 0x4000:
		cart.romBank = int(data & 0x7f)
		if cart.romBank == 0 {
			cart.romBank = 1
		}
	case address < 0x6000:
		cart.mbc3.selected = data
		if data <= 0x03 {
			cart.ramBank = int(data)
		}
	default:
		if cart.mbc3.latch == 0x00 && data == 0x01 && cart.Header.Timer {
			cart.mbc3.rtc.latchClock()
		}
		cart.mbc3.latch = data
	}
}

func (cart *Cartridge) readMBC3(address uint16) uint8 {
	sel := cart.mbc3.selected
	switch {
	case sel <= 0x03:
		if idx, ok := cart.ramAddress(address); ok {
			return cart.ram[idx]
		}
	case sel >= rtcSelectFirst && sel <= rtcSelectLast:
		if cart.Header.Timer {
			return cart.mbc3.rtc.read(int(sel - rtcSelectFirst))
		}
	}
	return Sentinel
}

func (cart *Cartridge) writeMBC3RAM(address uint16, data uint8) {
	sel := cart.mbc3.selected
	switch {
	case sel <= 0x03:
		if idx, ok := cart.ramAddress(address); ok {
			cart.ram[idx] = data
		}
	case sel >= rtcSelectFirst && sel <= rtcSelectLast:
		if cart.Header.Timer {
			cart.mbc3.rtc.write(int(sel-rtcSelectFirst), data)
		}
	}
}
