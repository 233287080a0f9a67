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
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by NewCartridge() and ParseHeader(). Both
// indicate that the image cannot be emulated.
var (
	ErrMalformedHeader       = errors.New("malformed cartridge header")
	ErrUnsupportedController = errors.New("unsupported cartridge controller")
)

// locations of header fields in the cartridge ROM.
const (
	headerTitle        = 0x0134
	headerCGBFlag      = 0x0143
	headerCartType     = 0x0147
	headerROMSize      = 0x0148
	headerRAMSize      = 0x0149
	headerChecksum     = 0x014d
	headerEnd          = 0x0150
	headerChecksumFrom = 0x0134
	headerChecksumTo   = 0x014c
)

// size of banks in bytes.
const (
	ROMBankSize = 0x4000
	RAMBankSize = 0x2000
)

// Header is the information found in the cartridge header.
type Header struct {
	Title    string
	CartType uint8
	ROMCode  uint8
	RAMCode  uint8

	// number of 16KB ROM banks and size of the external RAM in bytes
	ROMBanks int
	RAMSize  int

	Checksum   uint8
	ChecksumOK bool

	// the capabilities of the controller identified by CartType
	Kind    Kind
	Battery bool
	Timer   bool
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title: %s\n", h.Title))
	s.WriteString(fmt.Sprintf("type: %#02x (%s", h.CartType, h.Kind))
	if h.Battery {
		s.WriteString("+BATTERY")
	}
	if h.Timer {
		s.WriteString("+TIMER")
	}
	s.WriteString(")\n")
	s.WriteString(fmt.Sprintf("rom: %d banks (%dKB)\n", h.ROMBanks, h.ROMBanks*ROMBankSize/1024))
	s.WriteString(fmt.Sprintf("ram: %dKB\n", h.RAMSize/1024))
	ok := "ok"
	if !h.ChecksumOK {
		ok = "mismatch"
	}
	s.WriteString(fmt.Sprintf("checksum: %#02x (%s)", h.Checksum, ok))
	return s.String()
}

// the capabilities of each supported cartridge type code.
var cartTypes = map[uint8]struct {
	kind    Kind
	ram     bool
	battery bool
	timer   bool
}{
	0x00: {kind: ROMOnly},
	0x08: {kind: ROMOnly, ram: true},
	0x09: {kind: ROMOnly, ram: true, battery: true},
	0x01: {kind: MBC1},
	0x02: {kind: MBC1, ram: true},
	0x03: {kind: MBC1, ram: true, battery: true},
	0x0f: {kind: MBC3, battery: true, timer: true},
	0x10: {kind: MBC3, ram: true, battery: true, timer: true},
	0x11: {kind: MBC3},
	0x12: {kind: MBC3, ram: true},
	0x13: {kind: MBC3, ram: true, battery: true},
	0x19: {kind: MBC5},
	0x1a: {kind: MBC5, ram: true},
	0x1b: {kind: MBC5, ram: true, battery: true},
	0x1c: {kind: MBC5},
	0x1d: {kind: MBC5, ram: true},
	0x1e: {kind: MBC5, ram: true, battery: true},
}

// external RAM size for each RAM size code.
var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 0x800,
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
	0x05: 0x10000,
}

// ParseHeader reads the cartridge header from the ROM data.
func ParseHeader(data []uint8) (Header, error) {
	var h Header

	if len(data) < headerEnd {
		return h, fmt.Errorf("%w: image too small (%d bytes)", ErrMalformedHeader, len(data))
	}

	// titles are shorter in later cartridges because the last bytes were
	// repurposed. a CGB flag with bit 7 set is the indicator for that
	titleEnd := headerCGBFlag + 1
	if data[headerCGBFlag]&0x80 == 0x80 {
		titleEnd = headerCGBFlag
	}
	h.Title = strings.TrimRight(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, string(data[headerTitle:titleEnd])), " ")

	h.CartType = data[headerCartType]
	h.ROMCode = data[headerROMSize]
	h.RAMCode = data[headerRAMSize]
	h.Checksum = data[headerChecksum]

	var x uint8
	for _, b := range data[headerChecksumFrom : headerChecksumTo+1] {
		x = x - b - 1
	}
	h.ChecksumOK = x == h.Checksum

	if h.ROMCode > 0x08 {
		return h, fmt.Errorf("%w: unknown ROM size code (%#02x)", ErrMalformedHeader, h.ROMCode)
	}
	h.ROMBanks = 2 << h.ROMCode

	ct, ok := cartTypes[h.CartType]
	if !ok {
		return h, fmt.Errorf("%w: type code %#02x", ErrUnsupportedController, h.CartType)
	}
	h.Kind = ct.kind
	h.Battery = ct.battery
	h.Timer = ct.timer

	sz, ok := ramSizes[h.RAMCode]
	if !ok {
		return h, fmt.Errorf("%w: unknown RAM size code (%#02x)", ErrMalformedHeader, h.RAMCode)
	}
	if ct.ram {
		h.RAMSize = sz
	}

	return h, nil
}
