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

import (
	"encoding/binary"
	"fmt"
	"time"
)

// size of the RTC state appended to the RAM in the battery data.
const rtcDataSize = 8 + 8 + 1

// HasBattery returns true if the cartridge has battery backed RAM (or a
// battery backed clock).
func (cart *Cartridge) HasBattery() bool {
	return cart.Header.Battery
}

// SaveData returns the contents of battery backed memory. For cartridges with
// an RTC the state of the clock is appended to the RAM contents.
func (cart *Cartridge) SaveData() []uint8 {
	data := make([]uint8, len(cart.ram), len(cart.ram)+rtcDataSize)
	copy(data, cart.ram)

	if cart.Header.Timer {
		c := &cart.mbc3.rtc
		c.update()
		data = binary.LittleEndian.AppendUint64(data, uint64(c.seconds))
		data = binary.LittleEndian.AppendUint64(data, uint64(c.last.Unix()))
		var fl uint8
		if c.halt {
			fl |= rtcDayHighHalt
		}
		if c.carry {
			fl |= rtcDayHighCarry
		}
		data = append(data, fl)
	}

	return data
}

// LoadData restores battery backed memory from data previously created by
// SaveData().
func (cart *Cartridge) LoadData(data []uint8) error {
	expected := len(cart.ram)
	if cart.Header.Timer {
		expected += rtcDataSize
	}
	if len(data) != expected {
		return fmt.Errorf("cartridge: battery data is the wrong size (%d bytes, expected %d)", len(data), expected)
	}

	copy(cart.ram, data)

	if cart.Header.Timer {
		c := &cart.mbc3.rtc
		d := data[len(cart.ram):]
		c.seconds = int64(binary.LittleEndian.Uint64(d[0:])) % rtcPeriod
		c.last = time.Unix(int64(binary.LittleEndian.Uint64(d[8:])), 0)
		c.halt = d[16]&rtcDayHighHalt == rtcDayHighHalt
		c.carry = d[16]&rtcDayHighCarry == rtcDayHighCarry

		// the clock has been running while the emulator was not
		c.update()
		c.latched = c.registers()
	}

	return nil
}
