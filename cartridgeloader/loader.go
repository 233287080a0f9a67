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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopherboy/gopherboy/hardware/memory"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/logger"
)

// ErrNoFilename is returned by NewLoader() when the filename is empty.
var ErrNoFilename = errors.New("no filename")

// SaveExtension is the file extension used for battery backed RAM.
const SaveExtension = ".sav"

// FileExtensions is the list of file extensions that are recognised as Game
// Boy cartridges. Other extensions are not rejected.
var FileExtensions = [...]string{".GB", ".GBC", ".DMG", ".BIN", ".ROM"}

// Loader is used to specify the cartridge to insert into the emulation.
type Loader struct {
	// filename of cartridge to load. can be a URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The data is not loaded until Load() is called.
func NewLoader(filename string) (Loader, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", ErrNoFilename)
	}
	return Loader{Filename: filename}, nil
}

// ShortName returns a shortened version of the filename, without the path or
// the extension.
func (cl Loader) ShortName() string {
	n := filepath.Base(cl.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// IsRemote returns true if the filename is an HTTP or HTTPS URL.
func (cl Loader) IsRemote() bool {
	u, err := url.Parse(cl.Filename)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Load the cartridge data. Calling Load() when the data has already been
// loaded has no effect.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	// a single letter scheme is a windows drive letter
	if len(scheme) == 1 {
		scheme = "file"
	}

	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("cartridgeloader: %s", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	case "file":
		cl.Data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	default:
		return fmt.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}

	if len(cl.Data) == 0 {
		return fmt.Errorf("cartridgeloader: %s is empty", cl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return fmt.Errorf("cartridgeloader: unexpected hash value")
	}
	cl.Hash = hash

	return nil
}

// SavePath returns the path of the battery file for the cartridge. Remote
// cartridges have no save path and the empty string is returned.
func (cl Loader) SavePath() string {
	if cl.IsRemote() {
		return ""
	}
	fn := strings.TrimPrefix(cl.Filename, "file://")
	return strings.TrimSuffix(fn, filepath.Ext(fn)) + SaveExtension
}

// LoadBattery restores the battery backed RAM of the cartridge from the save
// file. A missing save file is not an error.
func (cl Loader) LoadBattery(perm logger.Permission, cart *cartridge.Cartridge) error {
	if !cart.HasBattery() {
		return nil
	}

	pth := cl.SavePath()
	if pth == "" {
		return nil
	}

	data, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	err = cart.LoadData(data)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	logger.Logf(perm, "cartridgeloader", "battery loaded from %s", pth)

	return nil
}

// SaveBattery writes the battery backed RAM of the cartridge to the save
// file. Nothing is written if the cartridge has no battery.
func (cl Loader) SaveBattery(perm logger.Permission, cart *cartridge.Cartridge) error {
	if !cart.HasBattery() {
		return nil
	}

	pth := cl.SavePath()
	if pth == "" {
		return nil
	}

	err := os.WriteFile(pth, cart.SaveData(), 0o644)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	logger.Logf(perm, "cartridgeloader", "battery saved to %s", pth)

	return nil
}

// LoadBootROM reads a boot ROM image from the file. The image must be
// exactly memory.BootROMSize bytes long.
func LoadBootROM(pth string) ([]uint8, error) {
	data, err := os.ReadFile(pth)
	if err != nil {
		return nil, fmt.Errorf("cartridgeloader: boot ROM: %w", err)
	}
	if len(data) != memory.BootROMSize {
		return nil, fmt.Errorf("cartridgeloader: boot ROM: must be %d bytes (not %d)", memory.BootROMSize, len(data))
	}
	return data, nil
}
