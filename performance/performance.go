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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopherboy/gopherboy/hardware"
	"github.com/gopherboy/gopherboy/hardware/ppu"
)

// sentinel error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the GameBoy for the
// duration. The first frames are run for the leadtime before measurement
// begins, allowing the frame rate to settle.
//
// Emulation will create a cpu profile, a memory profile, a trace (or a
// combination of those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, gb *hardware.GameBoy, duration string, leadtime time.Duration) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive (%s)", duration)
	}

	var numFrames int

	runner := func() error {
		// signals false when the leadtime has expired and true when the
		// measurement period has expired
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		startFrame := gb.Frames()

		return gb.RunForFrameCount(-1, func(frame int, _ *ppu.FrameBuffer) (bool, error) {
			select {
			case v := <-timerChan:
				if v {
					numFrames = frame - startFrame
					return false, timedOut
				}
				startFrame = frame
			default:
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	_, err = fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	return err
}
