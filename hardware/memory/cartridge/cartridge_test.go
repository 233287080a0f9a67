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

package cartridge_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

// makeImage creates a cartridge image with the number of banks indicated by
// romCode. the first byte of every bank is the bank number.
func makeImage(cartType uint8, romCode uint8, ramCode uint8) []uint8 {
	banks := 2 << romCode
	data := make([]uint8, banks*cartridge.ROMBankSize)
	for b := 0; b < banks; b++ {
		data[b*cartridge.ROMBankSize] = uint8(b)
		data[b*cartridge.ROMBankSize+1] = uint8(b >> 8)
	}
	copy(data[0x134:], "TESTCART")
	data[0x147] = cartType
	data[0x148] = romCode
	data[0x149] = ramCode

	var x uint8
	for _, b := range data[0x134:0x14d] {
		x = x - b - 1
	}
	data[0x14d] = x

	return data
}

func newCart(t *testing.T, data []uint8) *cartridge.Cartridge {
	t.Helper()
	cart, err := cartridge.NewCartridge(logger.Allow, data)
	test.DemandSuccess(t, err)
	return cart
}

func TestHeader(t *testing.T) {
	h, err := cartridge.ParseHeader(makeImage(0x13, 0x02, 0x03))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Title, "TESTCART")
	test.ExpectEquality(t, h.Kind, cartridge.MBC3)
	test.ExpectEquality(t, h.ROMBanks, 8)
	test.ExpectEquality(t, h.RAMSize, 0x8000)
	test.ExpectSuccess(t, h.ChecksumOK)
	test.ExpectSuccess(t, h.Battery)
	test.ExpectFailure(t, h.Timer)

	_, err = cartridge.ParseHeader(make([]uint8, 0x100))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrMalformedHeader))

	_, err = cartridge.ParseHeader(makeImage(0x05, 0x00, 0x00))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedController))

	_, err = cartridge.ParseHeader(makeImage(0x00, 0x00, 0x07))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrMalformedHeader))

	_, err = cartridge.NewCartridge(logger.Allow, makeImage(0xfc, 0x00, 0x00))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedController))
}

func TestROMOnly(t *testing.T) {
	cart := newCart(t, makeImage(0x00, 0x00, 0x00))
	test.ExpectEquality(t, cart.Kind(), cartridge.ROMOnly)
	test.ExpectEquality(t, cart.ReadBank0(0x0000), uint8(0))
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(1))

	// no controller so writes to the ROM area change nothing
	cart.WriteControl(0x2000, 0x00)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(1))

	// no RAM
	cart.WriteRAM(0xa000, 0x12)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), cartridge.Sentinel)
}

func TestROMWithRAM(t *testing.T) {
	cart := newCart(t, makeImage(0x08, 0x00, 0x02))
	cart.WriteRAM(0xa123, 0x42)
	test.ExpectEquality(t, cart.ReadRAM(0xa123), uint8(0x42))
}

func TestMBC1(t *testing.T) {
	cart := newCart(t, makeImage(0x03, 0x06, 0x03))
	test.ExpectEquality(t, cart.ROMBank(), 1)

	// bank zero is remapped
	cart.WriteControl(0x2000, 0x00)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(1))

	cart.WriteControl(0x2000, 0x05)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(5))

	// upper bits
	cart.WriteControl(0x4000, 0x01)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(0x25))

	// mode 1 maps the upper bits into the bank 0 area as well
	test.ExpectEquality(t, cart.ReadBank0(0x0000), uint8(0x00))
	cart.WriteControl(0x6000, 0x01)
	test.ExpectEquality(t, cart.ReadBank0(0x0000), uint8(0x20))

	// RAM is disabled until enabled
	cart.WriteRAM(0xa000, 0x99)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), cartridge.Sentinel)
	cart.WriteControl(0x0000, 0x0a)
	cart.WriteRAM(0xa000, 0x99)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0x99))

	// RAM bank 1 in mode 1 is a different page
	cart.WriteControl(0x4000, 0x00)
	test.ExpectInequality(t, cart.ReadRAM(0xa000), uint8(0x99))
}

func TestMBC3Banking(t *testing.T) {
	cart := newCart(t, makeImage(0x13, 0x06, 0x03))

	cart.WriteControl(0x2000, 0x00)
	test.ExpectEquality(t, cart.ROMBank(), 1)

	cart.WriteControl(0x2000, 0x7f)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(0x7f))

	// only the low seven bits participate
	cart.WriteControl(0x2000, 0x83)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(0x03))

	// bank number is reduced to a valid bank
	small := newCart(t, makeImage(0x11, 0x01, 0x00))
	small.WriteControl(0x2000, 0x05)
	test.ExpectEquality(t, small.ReadCurrentBank(0x4000), uint8(0x01))
}

func TestMBC3RAM(t *testing.T) {
	cart := newCart(t, makeImage(0x13, 0x02, 0x03))

	// disabled RAM reads as the sentinel regardless of writes
	cart.WriteRAM(0xa000, 0x11)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), cartridge.Sentinel)

	// only the exact enable value enables RAM
	cart.WriteControl(0x0000, 0x0b)
	test.ExpectFailure(t, cart.RAMEnabled())
	cart.WriteControl(0x0000, 0x0a)
	test.ExpectSuccess(t, cart.RAMEnabled())

	for bank := uint8(0); bank < 4; bank++ {
		cart.WriteControl(0x4000, bank)
		cart.WriteRAM(0xa010, 0x40+bank)
	}
	for bank := uint8(0); bank < 4; bank++ {
		cart.WriteControl(0x4000, bank)
		test.ExpectEquality(t, cart.ReadRAM(0xa010), 0x40+bank)
	}

	// an undefined select value reads the sentinel and ignores writes
	cart.WriteControl(0x4000, 0x05)
	cart.WriteRAM(0xa010, 0x00)
	test.ExpectEquality(t, cart.ReadRAM(0xa010), cartridge.Sentinel)
	cart.WriteControl(0x4000, 0x00)
	test.ExpectEquality(t, cart.ReadRAM(0xa010), uint8(0x40))

	// RTC registers on a cartridge without a timer read as the sentinel
	cart.WriteControl(0x4000, 0x08)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), cartridge.Sentinel)

	// disabling RAM hides previously written values
	cart.WriteControl(0x4000, 0x00)
	cart.WriteControl(0x0000, 0x00)
	test.ExpectEquality(t, cart.ReadRAM(0xa010), cartridge.Sentinel)
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func TestMBC3RTC(t *testing.T) {
	cart := newCart(t, makeImage(0x10, 0x02, 0x03))
	clk := &clock{t: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	cart.SetClock(clk.now)

	latch := func() {
		cart.WriteControl(0x6000, 0x00)
		cart.WriteControl(0x6000, 0x01)
	}
	read := func(sel uint8) uint8 {
		cart.WriteControl(0x4000, sel)
		return cart.ReadRAM(0xa000)
	}

	cart.WriteControl(0x0000, 0x0a)
	latch()
	test.ExpectEquality(t, read(0x08), uint8(0))

	clk.t = clk.t.Add(25*time.Hour + 2*time.Minute + 3*time.Second)

	// latched values do not change until the next latch
	test.ExpectEquality(t, read(0x08), uint8(0))
	latch()
	test.ExpectEquality(t, read(0x08), uint8(3))
	test.ExpectEquality(t, read(0x09), uint8(2))
	test.ExpectEquality(t, read(0x0a), uint8(1))
	test.ExpectEquality(t, read(0x0b), uint8(1))
	test.ExpectEquality(t, read(0x0c), uint8(0))

	// halt the clock
	cart.WriteControl(0x4000, 0x0c)
	cart.WriteRAM(0xa000, 0x40)
	clk.t = clk.t.Add(time.Hour)
	latch()
	test.ExpectEquality(t, read(0x0a), uint8(1))
	test.ExpectEquality(t, read(0x0c), uint8(0x40))

	// write a register directly
	cart.WriteControl(0x4000, 0x08)
	cart.WriteRAM(0xa000, 30)
	latch()
	test.ExpectEquality(t, read(0x08), uint8(30))
}

func TestMBC5(t *testing.T) {
	cart := newCart(t, makeImage(0x1b, 0x08, 0x04))

	// bank zero is allowed
	cart.WriteControl(0x2000, 0x00)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4000), uint8(0))

	cart.WriteControl(0x2000, 0x23)
	cart.WriteControl(0x3000, 0x01)
	test.ExpectEquality(t, cart.ROMBank(), 0x123)
	test.ExpectEquality(t, cart.ReadCurrentBank(0x4001), uint8(0x01))

	cart.WriteControl(0x0000, 0x0a)
	cart.WriteControl(0x4000, 0x0f)
	cart.WriteRAM(0xbfff, 0x5a)
	test.ExpectEquality(t, cart.ReadRAM(0xbfff), uint8(0x5a))
	cart.WriteControl(0x4000, 0x00)
	test.ExpectEquality(t, cart.ReadRAM(0xbfff), uint8(0x00))
}

func TestBattery(t *testing.T) {
	cart := newCart(t, makeImage(0x10, 0x02, 0x03))
	clk := &clock{t: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	cart.SetClock(clk.now)
	test.ExpectSuccess(t, cart.HasBattery())

	cart.WriteControl(0x0000, 0x0a)
	cart.WriteRAM(0xa000, 0x77)
	cart.WriteControl(0x6000, 0x00)
	clk.t = clk.t.Add(10 * time.Second)
	data := cart.SaveData()

	restored := newCart(t, makeImage(0x10, 0x02, 0x03))
	restored.SetClock(clk.now)
	test.DemandSuccess(t, restored.LoadData(data))
	restored.WriteControl(0x0000, 0x0a)
	test.ExpectEquality(t, restored.ReadRAM(0xa000), uint8(0x77))

	restored.WriteControl(0x4000, 0x08)
	test.ExpectEquality(t, restored.ReadRAM(0xa000), uint8(10))

	test.ExpectFailure(t, restored.LoadData(data[:10]))
}
