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

import (
	"fmt"
	"io"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/hardware/cpu"
	"github.com/gopherboy/gopherboy/hardware/dma"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/memory"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/hardware/serial"
	"github.com/gopherboy/gopherboy/hardware/timer"
	"github.com/gopherboy/gopherboy/logger"
)

// CyclesPerFrame is the number of M-cycles in one frame.
const CyclesPerFrame = ppu.FrameCycles

// Config is the configuration of a new GameBoy. Only the Cartridge field is
// required.
type Config struct {
	Cartridge *cartridge.Cartridge

	// optional boot ROM. if it is nil then the machine starts in the state
	// left by the boot ROM
	BootROM []uint8

	// called once per step. if it is nil then the buttons are never pressed
	Input joypad.Provider

	// the audio destination and the format of the samples. sink can be nil
	// but the sample rate and buffer size are always required
	Sink       apu.Sink
	SampleRate int
	BufferSize int

	Palette ppu.Palette

	// bytes shifted out of the serial port are written here
	Serial io.Writer

	// if not nil a line is written to Trace before every instruction
	Trace io.Writer
}

// GameBoy is the main container for the emulated components of the console.
type GameBoy struct {
	env *environment.Environment

	CPU        *cpu.CPU
	Mem        *memory.Memory
	Interrupts *interrupts.Resolver
	Timer      *timer.Timer
	Serial     *serial.Serial
	DMA        *dma.DMA
	PPU        *ppu.PPU
	APU        *apu.APU
	Joypad     *joypad.Joypad

	input joypad.Provider
	trace io.Writer

	// M-cycles into the current frame
	frameCycles int

	// number of frames returned by RunFrame()
	frames int
}

// NewGameBoy creates a new GameBoy and everything associated with the
// hardware.
func NewGameBoy(env *environment.Environment, cfg Config) (*GameBoy, error) {
	if env == nil {
		return nil, fmt.Errorf("hardware: no environment")
	}
	if cfg.Cartridge == nil {
		return nil, fmt.Errorf("hardware: no cartridge")
	}

	input := cfg.Input
	if input == nil {
		input = joypad.Released
	}

	gb := &GameBoy{
		env:        env,
		CPU:        cpu.NewCPU(),
		Interrupts: &interrupts.Resolver{},
		Timer:      timer.NewTimer(),
		Serial:     serial.NewSerial(env, cfg.Serial),
		DMA:        dma.NewDMA(),
		PPU:        ppu.NewPPU(cfg.Palette),
		Joypad:     joypad.NewJoypad(),
		input:      input,
		trace:      cfg.Trace,
	}

	var err error

	gb.Mem, err = memory.NewMemory(env, cfg.Cartridge, cfg.BootROM)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	gb.APU, err = apu.NewAPU(env, cfg.Sink, cfg.SampleRate, cfg.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	gb.Reset()

	logger.Logf(env, "hardware", "inserted %s", cfg.Cartridge)

	return gb, nil
}

func (gb *GameBoy) String() string {
	return fmt.Sprintf("%s | %s | %s", gb.CPU, gb.PPU, gb.Timer)
}

// Reset the machine to its power-on state. If there is no boot ROM then the
// state is as it would be at the end of the boot ROM.
func (gb *GameBoy) Reset() {
	gb.Mem.Reset()
	gb.Mem.Cartridge().Reset()
	gb.CPU.Reset(!gb.Mem.BootEnabled())
	*gb.Interrupts = interrupts.Resolver{}
	gb.Timer.Reset(gb.Mem)
	gb.Serial.Reset()
	gb.DMA.Reset()
	gb.PPU.Reset(gb.Mem)
	gb.APU.Reset(gb.Mem)
	gb.Joypad.Reset()
	gb.frameCycles = 0
	gb.frames = 0
}

// FrameCycles returns the number of M-cycles into the current frame. The
// value is always less than CyclesPerFrame between calls to RunFrame().
func (gb *GameBoy) FrameCycles() int {
	return gb.frameCycles
}

// Frames returns the number of frames completed by RunFrame().
func (gb *GameBoy) Frames() int {
	return gb.frames
}

// FrameBuffer returns the most recently completed frame.
func (gb *GameBoy) FrameBuffer() *ppu.FrameBuffer {
	return gb.PPU.FrameBuffer()
}

// Close flushes any samples waiting to be sent to the audio sink.
func (gb *GameBoy) Close() {
	gb.APU.Flush()
}
