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

package cartridgeloader_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherboy/gopherboy/cartridgeloader"
	"github.com/gopherboy/gopherboy/hardware/memory"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

// image of a 32KB cartridge with the type and RAM size codes
func makeImage(cartType uint8, ramCode uint8) []uint8 {
	data := make([]uint8, 2*cartridge.ROMBankSize)
	copy(data[0x134:], "LOADER")
	data[0x147] = cartType
	data[0x149] = ramCode

	var x uint8
	for _, b := range data[0x134:0x14d] {
		x = x - b - 1
	}
	data[0x14d] = x

	return data
}

func writeFile(t *testing.T, name string, data []uint8) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func TestNewLoader(t *testing.T) {
	_, err := cartridgeloader.NewLoader("  ")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrNoFilename))

	cl, err := cartridgeloader.NewLoader("roms/tetris.gb")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.ShortName(), "tetris")
	test.ExpectEquality(t, cl.SavePath(), filepath.FromSlash("roms/tetris")+".sav")
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectFailure(t, cl.IsRemote())

	cl, err = cartridgeloader.NewLoader("https://example.com/tetris.gb")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cl.IsRemote())
	test.ExpectEquality(t, cl.SavePath(), "")
}

func TestLoadFile(t *testing.T) {
	data := makeImage(0x00, 0x00)
	pth := writeFile(t, "test.gb", data)

	cl, err := cartridgeloader.NewLoader(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), len(data))
	test.ExpectEquality(t, len(cl.Hash), 40)

	// the hash is checked when it is known in advance
	other, err := cartridgeloader.NewLoader(pth)
	test.DemandSuccess(t, err)
	other.Hash = cl.Hash
	test.ExpectSuccess(t, other.Load())

	other, err = cartridgeloader.NewLoader(pth)
	test.DemandSuccess(t, err)
	other.Hash = "0000"
	test.ExpectFailure(t, other.Load())
	test.ExpectFailure(t, other.HasLoaded())

	missing, err := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, missing.Load())
}

func TestLoadHTTP(t *testing.T) {
	data := makeImage(0x00, 0x00)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.gb" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl, err := cartridgeloader.NewLoader(srv.URL + "/test.gb")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))

	cl, err = cartridgeloader.NewLoader(srv.URL + "/missing.gb")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.Load())
}

func TestBattery(t *testing.T) {
	// MBC1+RAM+BATTERY with 8KB of RAM
	data := makeImage(0x03, 0x02)
	pth := writeFile(t, "battery.gb", data)

	cl, err := cartridgeloader.NewLoader(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cl.Load())

	cart, err := cartridge.NewCartridge(logger.Allow, cl.Data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cart.HasBattery())

	// no save file yet
	test.ExpectSuccess(t, cl.LoadBattery(logger.Allow, cart))

	cart.WriteControl(0x0000, 0x0a)
	cart.WriteRAM(0xa000, 0x42)
	cart.WriteRAM(0xbfff, 0x24)
	test.DemandSuccess(t, cl.SaveBattery(logger.Allow, cart))

	_, err = os.Stat(cl.SavePath())
	test.ExpectSuccess(t, err)

	restored, err := cartridge.NewCartridge(logger.Allow, cl.Data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cl.LoadBattery(logger.Allow, restored))
	restored.WriteControl(0x0000, 0x0a)
	test.ExpectEquality(t, restored.ReadRAM(0xa000), uint8(0x42))
	test.ExpectEquality(t, restored.ReadRAM(0xbfff), uint8(0x24))

	// cartridges without a battery are ignored
	plain, err := cartridge.NewCartridge(logger.Allow, makeImage(0x00, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cl.SaveBattery(logger.Allow, plain))
}

func TestBootROM(t *testing.T) {
	pth := writeFile(t, "boot.bin", make([]uint8, memory.BootROMSize))
	boot, err := cartridgeloader.LoadBootROM(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(boot), memory.BootROMSize)

	pth = writeFile(t, "short.bin", make([]uint8, 100))
	_, err = cartridgeloader.LoadBootROM(pth)
	test.ExpectFailure(t, err)
}
