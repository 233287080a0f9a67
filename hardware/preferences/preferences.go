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

// Package preferences holds the preference values used by the emulation and
// by the presentation layers around it.
//
// Hardware packages never read these values directly. The values are passed
// into construction of the machine by whoever creates it.
package preferences

import (
	"fmt"

	"github.com/gopherboy/gopherboy/paths"
	"github.com/gopherboy/gopherboy/prefs"
)

// Preferences defines and collates the preference values for the emulation.
type Preferences struct {
	dsk *prefs.Disk

	// path to a DMG boot ROM. the empty string means no boot ROM and the
	// machine starts in the post-boot state
	BootROM prefs.String

	// load and save battery backed cartridge RAM
	Battery prefs.Bool

	// output rate of the audio unit and the number of sample pairs in each
	// batch sent to the audio sinks
	SampleRate prefs.Int
	BufferSize prefs.Int

	// integer scaling of the 160x144 screen in windowed displays
	Scale prefs.Int

	// limit emulation speed to the refresh rate of the hardware
	FPSCap prefs.Bool

	// name of the four shade palette
	Palette prefs.String
}

// default values.
const (
	defaultSampleRate = 44100
	defaultBufferSize = 512
	defaultScale      = 4
	defaultPalette    = "DMG"
)

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < 8000 || r > 192000 {
			return fmt.Errorf("preferences: unsupported sample rate (%d)", r)
		}
		return nil
	})
	p.BufferSize.SetHookPre(func(v prefs.Value) error {
		if b := v.(int); b < 16 || b > 16384 {
			return fmt.Errorf("preferences: unsupported audio buffer size (%d)", b)
		}
		return nil
	})
	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 1 || s > 10 {
			return fmt.Errorf("preferences: unsupported display scale (%d)", s)
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	if err := p.dsk.Add("hardware.bootrom", &p.BootROM); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	if err := p.dsk.Add("hardware.battery", &p.Battery); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	if err := p.dsk.Add("audio.samplerate", &p.SampleRate); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	if err := p.dsk.Add("audio.buffer", &p.BufferSize); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	if err := p.dsk.Add("display.scale", &p.Scale); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	if err := p.dsk.Add("display.fpscap", &p.FPSCap); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	if err := p.dsk.Add("display.palette", &p.Palette); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.BootROM.Set("")
	p.Battery.Set(true)
	p.SampleRate.Set(defaultSampleRate)
	p.BufferSize.Set(defaultBufferSize)
	p.Scale.Set(defaultScale)
	p.FPSCap.Set(true)
	p.Palette.Set(defaultPalette)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
