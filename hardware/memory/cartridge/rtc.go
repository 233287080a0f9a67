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
	"time"
)

// the RTC registers in the order they are selected by the MBC3 select
// register (0x08 to 0x0c).
const (
	rtcSeconds = iota
	rtcMinutes
	rtcHours
	rtcDayLow
	rtcDayHigh
	numRTCRegisters
)

// flags in the day-high register.
const (
	rtcDayHighBit8  = 0x01
	rtcDayHighHalt  = 0x40
	rtcDayHighCarry = 0x80
)

// the day counter is nine bits wide.
const rtcPeriod = 512 * 24 * 60 * 60

// rtc is the real-time clock of the MBC3. The clock runs in real (wall
// clock) time, not emulated time.
type rtc struct {
	now func() time.Time

	// seconds counted since day zero, as of the time in the last field
	seconds int64
	last    time.Time

	halt  bool
	carry bool

	// the values seen by the CPU are the values at the moment of the most
	// recent latch
	latched [numRTCRegisters]uint8
}

// update the seconds counter to the current time.
func (c *rtc) update() {
	t := c.now()

	if c.halt || c.last.IsZero() {
		c.last = t
		return
	}

	// whole seconds only. any remainder is carried into the next update
	d := int64(t.Sub(c.last) / time.Second)
	if d <= 0 {
		return
	}
	c.seconds += d
	c.last = c.last.Add(time.Duration(d) * time.Second)

	if c.seconds >= rtcPeriod {
		c.carry = true
		c.seconds %= rtcPeriod
	}
}

// registers returns the current value of the five registers.
func (c *rtc) registers() [numRTCRegisters]uint8 {
	var r [numRTCRegisters]uint8
	days := c.seconds / 86400
	r[rtcSeconds] = uint8(c.seconds % 60)
	r[rtcMinutes] = uint8(c.seconds / 60 % 60)
	r[rtcHours] = uint8(c.seconds / 3600 % 24)
	r[rtcDayLow] = uint8(days)
	r[rtcDayHigh] = uint8(days>>8) & rtcDayHighBit8
	if c.halt {
		r[rtcDayHigh] |= rtcDayHighHalt
	}
	if c.carry {
		r[rtcDayHigh] |= rtcDayHighCarry
	}
	return r
}

func (c *rtc) latchClock() {
	c.update()
	c.latched = c.registers()
}

func (c *rtc) read(reg int) uint8 {
	return c.latched[reg]
}

func (c *rtc) write(reg int, data uint8) {
	c.update()

	r := c.registers()
	switch reg {
	case rtcSeconds, rtcMinutes:
		r[reg] = data & 0x3f
	case rtcHours:
		r[reg] = data & 0x1f
	case rtcDayLow:
		r[reg] = data
	case rtcDayHigh:
		r[reg] = data & (rtcDayHighBit8 | rtcDayHighHalt | rtcDayHighCarry)
	}

	days := int64(r[rtcDayHigh]&rtcDayHighBit8)<<8 | int64(r[rtcDayLow])
	c.seconds = days*86400 + int64(r[rtcHours])*3600 + int64(r[rtcMinutes])*60 + int64(r[rtcSeconds])
	c.carry = r[rtcDayHigh]&rtcDayHighCarry == rtcDayHighCarry

	halt := r[rtcDayHigh]&rtcDayHighHalt == rtcDayHighHalt
	if c.halt && !halt {
		c.last = c.now()
	}
	c.halt = halt
}

// SetClock replaces the source of the current time used by the RTC of an
// MBC3 cartridge. Useful when the output of the emulation must be
// reproducible. Has no effect for cartridges without an RTC.
func (cart *Cartridge) SetClock(now func() time.Time) {
	if !cart.Header.Timer {
		return
	}
	cart.mbc3.rtc.now = now
	cart.mbc3.rtc.last = now()
}
