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

package hardware

import "github.com/gopherboy/gopherboy/hardware/ppu"

// RunFrame runs the emulation until a frame's worth of cycles has passed.
// Any cycles in excess of CyclesPerFrame are carried over to the next frame.
//
// The returned frame is owned by the emulation and is only valid until the
// next call to RunFrame().
func (gb *GameBoy) RunFrame() (*ppu.FrameBuffer, error) {
	for gb.frameCycles < CyclesPerFrame {
		if err := gb.Step(); err != nil {
			return nil, err
		}
	}
	gb.frameCycles -= CyclesPerFrame
	gb.frames++

	return gb.PPU.FrameBuffer(), nil
}

// RunForFrameCount runs the emulation for the specified number of frames.
// The continueCheck function is called after every frame and can be nil. If
// it returns false then the emulation stops before the frame count has been
// reached. A negative frame count runs the emulation until continueCheck
// returns false or an error.
func (gb *GameBoy) RunForFrameCount(numFrames int, continueCheck func(frame int, fb *ppu.FrameBuffer) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int, _ *ppu.FrameBuffer) (bool, error) { return true, nil }
	}

	for n := 0; numFrames < 0 || n < numFrames; n++ {
		fb, err := gb.RunFrame()
		if err != nil {
			return err
		}

		cont, err := continueCheck(gb.frames, fb)
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}
