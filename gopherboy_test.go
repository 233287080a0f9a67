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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/digest"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/modalflag"
	"github.com/gopherboy/gopherboy/test"
)

func parseOptions(t *testing.T, display bool, args ...string) (*modalflag.Modes, *options) {
	t.Helper()

	md := &modalflag.Modes{}
	md.NewArgs(args)
	opts := addOptions(md)
	if display {
		opts.addDisplay(md)
	}

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	opts.parsed(md)

	return md, opts
}

// writes a cartridge that loops forever and returns the filename.
func writeCartridge(t *testing.T) string {
	t.Helper()

	data := make([]uint8, 2*cartridge.ROMBankSize)
	copy(data[0x100:], []uint8{0x18, 0xfe})
	copy(data[0x134:], "LOOP")

	var x uint8
	for _, b := range data[0x134:0x14d] {
		x = x - b - 1
	}
	data[0x14d] = x

	fn := filepath.Join(t.TempDir(), "loop.gb")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestOptions(t *testing.T) {
	t.Chdir(t.TempDir())

	md, opts := parseOptions(t, true, "-palette", "pocket", "-scale", "2", "-fpscap=false", "rom.gb")

	fn, err := cartridgeArg(md)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "rom.gb")

	env, err := newEnvironment(opts, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, env.Prefs.Palette.Get().(string), "pocket")
	test.ExpectEquality(t, env.Prefs.Scale.Get().(int), 2)
	test.ExpectEquality(t, env.Prefs.FPSCap.Get().(bool), false)

	// flags that were not set do not change the preference
	test.ExpectEquality(t, env.Prefs.Battery.Get().(bool), true)
	test.ExpectEquality(t, env.Prefs.BootROM.Get().(string), "")
}

func TestOptionsPrefsStack(t *testing.T) {
	t.Chdir(t.TempDir())

	_, opts := parseOptions(t, true, "-prefs", "display.scale::3; audio.samplerate::22050")
	env, err := newEnvironment(opts, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, env.Prefs.Scale.Get().(int), 3)
	test.ExpectEquality(t, env.Prefs.SampleRate.Get().(int), 22050)

	// normalising ignores the preferences file and the prefs stack but not
	// the flags
	_, opts = parseOptions(t, true, "-prefs", "display.scale::3", "-palette", "grey")
	env, err = newEnvironment(opts, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, env.Prefs.Scale.Get().(int), 4)
	test.ExpectEquality(t, env.Prefs.Palette.Get().(string), "grey")

	// invalid values are rejected by the preference
	_, opts = parseOptions(t, true, "-scale", "100")
	_, err = newEnvironment(opts, false)
	test.ExpectFailure(t, err)
}

func TestCartridgeArg(t *testing.T) {
	md, _ := parseOptions(t, false)
	_, err := cartridgeArg(md)
	test.ExpectFailure(t, err)

	md, _ = parseOptions(t, false, "a.gb", "b.gb")
	_, err = cartridgeArg(md)
	test.ExpectFailure(t, err)
}

func TestAudioSink(t *testing.T) {
	t.Chdir(t.TempDir())

	_, opts := parseOptions(t, false)
	env, err := newEnvironment(opts, false)
	test.DemandSuccess(t, err)

	sink, closeSink, err := newAudioSink(env, "none", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sink, nil)
	closeSink()

	aud := digest.NewAudio()
	sink, closeSink, err = newAudioSink(env, "", "", aud)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sink, apu.Sink(aud))
	closeSink()

	sink, closeSink, err = newAudioSink(env, "none", filepath.Join(t.TempDir(), "test.wav"), aud)
	test.DemandSuccess(t, err)
	_, ok := sink.(*apu.MultiSink)
	test.ExpectSuccess(t, ok)
	closeSink()

	_, _, err = newAudioSink(env, "speaker", "")
	test.ExpectFailure(t, err)
}

func TestSession(t *testing.T) {
	t.Chdir(t.TempDir())

	logfile := filepath.Join(t.TempDir(), "log")
	trace := filepath.Join(t.TempDir(), "trace")

	_, opts := parseOptions(t, false, "-logfile", logfile, "-trace", trace)
	env, err := newEnvironment(opts, false)
	test.DemandSuccess(t, err)

	sess, err := newSession(env, opts, writeCartridge(t), nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sess.cart.Header.Title, "LOOP")

	fb, err := sess.gb.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, sess.screenshot(fb, "test"))

	test.DemandSuccess(t, sess.end())

	shots, err := filepath.Glob(filepath.Join(".gopherboy", "screenshots", "screenshot_loop_test_*.png"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(shots), 1)

	data, err := os.ReadFile(trace)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), "A:01 F:B0 B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE PC:0100"))

	_, err = os.Stat(logfile)
	test.ExpectSuccess(t, err)
}

func TestSessionErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, opts := parseOptions(t, false)
	env, err := newEnvironment(opts, false)
	test.DemandSuccess(t, err)

	_, err = newSession(env, opts, filepath.Join(t.TempDir(), "missing.gb"), nil, nil)
	test.ExpectFailure(t, err)

	_, opts = parseOptions(t, false, "-bootrom", filepath.Join(t.TempDir(), "missing.bin"))
	env, err = newEnvironment(opts, false)
	test.DemandSuccess(t, err)
	_, err = newSession(env, opts, writeCartridge(t), nil, nil)
	test.ExpectFailure(t, err)
}
