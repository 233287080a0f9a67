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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopherboy/gopherboy/cartridgeloader"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/hardware"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/macro"
	"github.com/gopherboy/gopherboy/modalflag"
	"github.com/gopherboy/gopherboy/prefs"
	"github.com/gopherboy/gopherboy/screenshot"
)

// options common to every mode that runs a cartridge. flags that have the
// same meaning as a preference override that preference for the session
// only. they are never saved.
type options struct {
	bootrom *string
	palette *string
	battery *bool
	log     *bool
	logfile *string
	prefs   *string
	serial  *bool
	trace   *string

	// only added for modes with a display
	scale  *int
	fpsCap *bool

	// flags that were set on the command line
	set map[string]bool
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		bootrom: md.AddString("bootrom", "", "path to a DMG boot ROM"),
		palette: md.AddString("palette", ppu.DefaultPalette, fmt.Sprintf("screen palette: %s", strings.Join(ppu.PaletteNames(), ", "))),
		battery: md.AddBool("battery", true, "load and save battery backed cartridge RAM"),
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		logfile: md.AddString("logfile", "", "write the debugging log to a file on exit"),
		prefs:   md.AddString("prefs", "", "preferences for this session. format is 'key::value; key::value'"),
		serial:  md.AddBool("serial", false, "echo bytes sent through the serial port to stdout"),
		trace:   md.AddString("trace", "", "write an instruction trace to a file. use - for stdout"),
	}
}

func (opts *options) addDisplay(md *modalflag.Modes) {
	opts.scale = md.AddInt("scale", 4, "window scaling")
	opts.fpsCap = md.AddBool("fpscap", true, "cap frame rate to that of the hardware")
}

// parsed should be called after a successful call to Parse().
func (opts *options) parsed(md *modalflag.Modes) {
	opts.set = make(map[string]bool)
	md.Visit(func(flag string) {
		opts.set[flag] = true
	})

	if *opts.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}
}

// apply the flags set on the command line to the environment's preferences.
func (opts *options) apply(env *environment.Environment) error {
	var err error
	if opts.set["bootrom"] {
		err = errors.Join(err, env.Prefs.BootROM.Set(*opts.bootrom))
	}
	if opts.set["battery"] {
		err = errors.Join(err, env.Prefs.Battery.Set(*opts.battery))
	}
	if opts.set["palette"] {
		err = errors.Join(err, env.Prefs.Palette.Set(*opts.palette))
	}
	if opts.set["scale"] {
		err = errors.Join(err, env.Prefs.Scale.Set(*opts.scale))
	}
	if opts.set["fpscap"] {
		err = errors.Join(err, env.Prefs.FPSCap.Set(*opts.fpsCap))
	}
	return err
}

// newEnvironment creates the environment for the main emulation. If
// normalise is true the preferences are reset to their default values before
// the command line flags are applied.
func newEnvironment(opts *options, normalise bool) (*environment.Environment, error) {
	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)

	if *opts.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}

	if err != nil {
		return nil, err
	}

	if normalise {
		env.Normalise()
	}

	if err := opts.apply(env); err != nil {
		return nil, err
	}

	return env, nil
}

// session is a cartridge inserted into a GameBoy.
type session struct {
	env    *environment.Environment
	opts   *options
	loader cartridgeloader.Loader
	cart   *cartridge.Cartridge
	gb     *hardware.GameBoy

	// nil if there is no trace or if the trace is going to stdout
	traceFile *os.File
}

func newSession(env *environment.Environment, opts *options, filename string, input joypad.Provider, sink apu.Sink) (*session, error) {
	sess := &session{
		env:  env,
		opts: opts,
	}

	var err error

	sess.loader, err = cartridgeloader.NewLoader(filename)
	if err != nil {
		return nil, err
	}
	if err := sess.loader.Load(); err != nil {
		return nil, err
	}

	sess.cart, err = cartridge.NewCartridge(env, sess.loader.Data)
	if err != nil {
		return nil, err
	}

	if env.Prefs.Battery.Get().(bool) {
		if err := sess.loader.LoadBattery(env, sess.cart); err != nil {
			return nil, err
		}
	}

	var bootROM []uint8
	if pth := env.Prefs.BootROM.Get().(string); pth != "" {
		bootROM, err = cartridgeloader.LoadBootROM(pth)
		if err != nil {
			return nil, err
		}
	}

	palette, err := ppu.PaletteByName(env.Prefs.Palette.Get().(string))
	if err != nil {
		return nil, err
	}

	var serial io.Writer
	if *opts.serial {
		serial = os.Stdout
	}

	var trace io.Writer
	switch *opts.trace {
	case "":
	case "-":
		trace = os.Stdout
	default:
		sess.traceFile, err = os.Create(*opts.trace)
		if err != nil {
			return nil, err
		}
		trace = sess.traceFile
	}

	sess.gb, err = hardware.NewGameBoy(env, hardware.Config{
		Cartridge:  sess.cart,
		BootROM:    bootROM,
		Input:      input,
		Sink:       sink,
		SampleRate: env.Prefs.SampleRate.Get().(int),
		BufferSize: env.Prefs.BufferSize.Get().(int),
		Palette:    palette,
		Serial:     serial,
		Trace:      trace,
	})
	if err != nil {
		if sess.traceFile != nil {
			sess.traceFile.Close()
		}
		return nil, err
	}

	return sess, nil
}

// end the session. the battery is saved and the log is written to the log
// file if requested.
func (sess *session) end() error {
	sess.gb.Close()

	var err error

	if sess.env.Prefs.Battery.Get().(bool) {
		err = errors.Join(err, sess.loader.SaveBattery(sess.env, sess.cart))
	}

	if sess.traceFile != nil {
		err = errors.Join(err, sess.traceFile.Close())
	}

	if *sess.opts.logfile != "" {
		f, ferr := os.Create(*sess.opts.logfile)
		if ferr == nil {
			logger.Write(f)
			ferr = f.Close()
		}
		err = errors.Join(err, ferr)
	}

	return err
}

// screenshot saves the frame to a unique file in the screenshots directory.
// the name is added to the filename if it is not empty.
func (sess *session) screenshot(fb *ppu.FrameBuffer, name string) error {
	cartName := sess.loader.ShortName()
	if name != "" {
		cartName = fmt.Sprintf("%s_%s", cartName, name)
	}

	fn, err := screenshot.Filename(cartName)
	if err != nil {
		return err
	}

	err = screenshot.Save(fb, fn, sess.env.Prefs.Scale.Get().(int))
	if err != nil {
		return err
	}

	logger.Logf(sess.env, "screenshot", "saved to %s", fn)
	return nil
}

// play the cartridge with the GUI returned by create. the joypad is
// controlled by both the GUI and, if the filename is not empty, the macro.
func play(env *environment.Environment, opts *options, filename string, macroFile string, audio string, wav string,
	create func(title string, scale int, fpsCap bool, hooks gui.Hooks) (gui.GUI, error)) (rerr error) {

	sink, closeSink, err := newAudioSink(env, audio, wav)
	if err != nil {
		return err
	}
	defer closeSink()

	var mcr *macro.Macro
	if macroFile != "" {
		mcr, err = macro.NewMacro(env, macroFile)
		if err != nil {
			return err
		}
		defer mcr.Close()
	}

	var scr gui.GUI
	input := joypad.ProviderFunc(func(s *joypad.State) {
		if scr != nil {
			scr.Provide(s)
		}
		if mcr != nil {
			mcr.Provide(s)
		}
	})

	sess, err := newSession(env, opts, filename, input, sink)
	if err != nil {
		return err
	}
	defer func() {
		rerr = errors.Join(rerr, sess.end())
	}()

	if mcr != nil {
		mcr.Screenshot = func(name string) error {
			return sess.screenshot(sess.gb.FrameBuffer(), name)
		}
	}

	catchInterrupt()

	hooks := gui.Hooks{
		OnFrame: func(_ *ppu.FrameBuffer) (bool, error) {
			if interrupted.Load() {
				return false, nil
			}
			if mcr != nil {
				if err := mcr.Frame(); err != nil {
					return false, err
				}
				if mcr.Quit() {
					return false, nil
				}
			}
			return true, nil
		},
		OnScreenshot: func(fb *ppu.FrameBuffer) {
			if err := sess.screenshot(fb, ""); err != nil {
				logger.Log(env, "screenshot", err.Error())
			}
		},
	}

	title := fmt.Sprintf("Gopherboy - %s", sess.cart.Header.Title)
	g, err := create(title, env.Prefs.Scale.Get().(int), env.Prefs.FPSCap.Get().(bool), hooks)
	if err != nil {
		return err
	}
	defer g.Destroy()
	scr = g

	return scr.Run(sess.gb)
}
