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
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopherboy/gopherboy/cartridgeloader"
	"github.com/gopherboy/gopherboy/digest"
	"github.com/gopherboy/gopherboy/gui"
	"github.com/gopherboy/gopherboy/gui/ebitenwindow"
	"github.com/gopherboy/gopherboy/gui/sdlwindow"
	"github.com/gopherboy/gopherboy/gui/termwindow"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/macro"
	"github.com/gopherboy/gopherboy/modalflag"
	"github.com/gopherboy/gopherboy/performance"
	"github.com/gopherboy/gopherboy/statsview"
)

func init() {
	// SDL window events must be serviced by the thread that created the
	// window. main() is guaranteed to run on the thread locked by init()
	runtime.LockOSThread()
}

// set when the user presses ctrl-c. a second ctrl-c ends the program
// immediately
var interrupted atomic.Bool

func catchInterrupt() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		interrupted.Store(true)
		signal.Stop(intChan)
	}()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TERMINAL", "PERFORMANCE", "DIGEST", "INFO")
	md.AdditionalHelp("each mode has its own flags. use -help after the mode name to see them")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "TERMINAL":
		err = terminal(md)

	case "PERFORMANCE":
		err = perform(md)

	case "DIGEST":
		err = digestMode(md)

	case "INFO":
		err = info(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// cartridgeArg returns the single cartridge filename expected after the
// mode flags.
func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func launchStatsview(enabled bool) {
	if !enabled {
		return
	}
	if !statsview.Available() {
		fmt.Println("* statsview not available in this build (use the statsview build tag)")
		return
	}
	statsview.Launch(os.Stdout)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	opts.addDisplay(md)
	display := md.AddString("display", "sdl", "display frontend: sdl, ebiten")
	audio := md.AddString("audio", "sdl", "audio output: sdl, oto, none")
	wav := md.AddString("wav", "", "record audio to wav file")
	macroFile := md.AddString("macro", "", "lua script to control the joypad")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the statsview server on %s", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.parsed(md)

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	var create func(title string, scale int, fpsCap bool, hooks gui.Hooks) (gui.GUI, error)

	switch strings.ToLower(*display) {
	case "sdl":
		create = func(title string, scale int, fpsCap bool, hooks gui.Hooks) (gui.GUI, error) {
			return sdlwindow.NewWindow(title, scale, fpsCap, hooks)
		}
	case "ebiten":
		create = func(title string, scale int, fpsCap bool, hooks gui.Hooks) (gui.GUI, error) {
			return ebitenwindow.NewWindow(title, scale, fpsCap, hooks), nil
		}
	default:
		return fmt.Errorf("unknown display (%s)", *display)
	}

	env, err := newEnvironment(opts, false)
	if err != nil {
		return err
	}

	launchStatsview(*stats)

	return play(env, opts, filename, *macroFile, *audio, *wav, create)
}

func terminal(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	opts.addDisplay(md)
	audio := md.AddString("audio", "none", "audio output: sdl, oto, none")
	wav := md.AddString("wav", "", "record audio to wav file")
	macroFile := md.AddString("macro", "", "lua script to control the joypad")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.parsed(md)

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	env, err := newEnvironment(opts, false)
	if err != nil {
		return err
	}

	return play(env, opts, filename, *macroFile, *audio, *wav,
		func(_ string, _ int, fpsCap bool, hooks gui.Hooks) (gui.GUI, error) {
			return termwindow.NewWindow(env, os.Stdout, fpsCap, hooks)
		})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	duration := md.AddString("duration", "5s", "run duration")
	leadtime := md.AddDuration("leadtime", time.Second, "time to run before measurement begins")
	profile := md.AddString("profile", "none", "create profile: cpu, mem, trace, all (comma separated)")
	memviz := md.AddString("memviz", "", "write a graph of the machine to a dot file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the statsview server on %s", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.parsed(md)

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	env, err := newEnvironment(opts, false)
	if err != nil {
		return err
	}
	if err := env.Prefs.Battery.Set(false); err != nil {
		return err
	}

	launchStatsview(*stats)

	sess, err := newSession(env, opts, filename, nil, nil)
	if err != nil {
		return err
	}

	if *memviz != "" {
		if err := performance.MemvizDump(sess.gb, *memviz); err != nil {
			return err
		}
	}

	err = performance.Check(os.Stdout, prof, sess.gb, *duration, *leadtime)
	if err != nil {
		sess.end()
		return err
	}

	return sess.end()
}

func digestMode(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	frames := md.AddInt("frames", 600, "number of frames to run")
	wav := md.AddString("wav", "", "record audio to wav file")
	macroFile := md.AddString("macro", "", "lua script to control the joypad")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.parsed(md)

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}
	if *frames < 1 {
		return fmt.Errorf("number of frames must be positive (%d)", *frames)
	}

	// the digest should not depend on the preferences file
	env, err := newEnvironment(opts, true)
	if err != nil {
		return err
	}
	if err := env.Prefs.Battery.Set(false); err != nil {
		return err
	}

	aud := digest.NewAudio()
	sink, closeSink, err := newAudioSink(env, "none", *wav, aud)
	if err != nil {
		return err
	}
	defer closeSink()

	var input joypad.Provider
	var mcr *macro.Macro
	if *macroFile != "" {
		mcr, err = macro.NewMacro(env, *macroFile)
		if err != nil {
			return err
		}
		defer mcr.Close()
		input = mcr
	}

	sess, err := newSession(env, opts, filename, input, sink)
	if err != nil {
		return err
	}

	catchInterrupt()

	vid := digest.NewVideo()
	err = sess.gb.RunForFrameCount(*frames, func(_ int, fb *ppu.FrameBuffer) (bool, error) {
		vid.Frame(fb)
		if mcr != nil {
			if err := mcr.Frame(); err != nil {
				return false, err
			}
			if mcr.Quit() {
				return false, nil
			}
		}
		return !interrupted.Load(), nil
	})
	if err != nil {
		sess.end()
		return err
	}

	// end the session before printing so that the final batch of samples is
	// included in the audio digest
	if err := sess.end(); err != nil {
		return err
	}

	fmt.Printf("video: %s (%d frames)\n", vid.Hash(), vid.Frames())
	fmt.Printf("audio: %s (%d samples)\n", aud.Hash(), aud.Samples())

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	cl, err := cartridgeloader.NewLoader(filename)
	if err != nil {
		return err
	}
	if err := cl.Load(); err != nil {
		return err
	}

	hdr, err := cartridge.ParseHeader(cl.Data)
	if err != nil {
		return err
	}

	fmt.Println(hdr)
	fmt.Printf("size: %d bytes\n", len(cl.Data))
	fmt.Printf("sha1: %s\n", cl.Hash)

	return nil
}
