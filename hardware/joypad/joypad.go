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

// Package joypad implements the P1 register and defines how button state is
// provided to the emulation.
//
// The eight buttons are arranged as two groups of four. The program selects
// a group by clearing bit 4 (directions) or bit 5 (buttons) of P1 and reads
// the state of the group in the lower four bits. A pressed button reads as
// zero.
package joypad

import (
	"strings"

	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
)

// Button identifies one of the eight buttons.
type Button int

// List of valid Button values. The first four are the directions and the
// second four are the buttons. The order within each group is the bit order
// in P1.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start

	numButtons
)

func (b Button) String() string {
	switch b {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	}
	return "unknown button"
}

// ButtonByName returns the button with the name. The name is not case
// sensitive. Returns false if there is no button with that name.
func ButtonByName(name string) (Button, bool) {
	for b := Right; b < numButtons; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return 0, false
}

// State is the pressed state of every button.
type State struct {
	pressed [numButtons]bool
}

// Set the pressed state of a button.
func (s *State) Set(b Button, pressed bool) {
	if b >= 0 && b < numButtons {
		s.pressed[b] = pressed
	}
}

// Press a button.
func (s *State) Press(b Button) {
	s.Set(b, true)
}

// Release a button.
func (s *State) Release(b Button) {
	s.Set(b, false)
}

// ReleaseAll releases every button.
func (s *State) ReleaseAll() {
	clear(s.pressed[:])
}

// IsPressed returns true if the button is pressed.
func (s *State) IsPressed(b Button) bool {
	if b >= 0 && b < numButtons {
		return s.pressed[b]
	}
	return false
}

func (s State) String() string {
	var p []string
	for b := Right; b < numButtons; b++ {
		if s.pressed[b] {
			p = append(p, b.String())
		}
	}
	if len(p) == 0 {
		return "none"
	}
	return strings.Join(p, "+")
}

// Provider updates the state of the buttons. It is called once per machine
// step and should not block.
type Provider interface {
	Provide(s *State)
}

// ProviderFunc allows a function to be used as a Provider.
type ProviderFunc func(s *State)

// Provide implements the Provider interface.
func (f ProviderFunc) Provide(s *State) {
	f(s)
}

// Released is a Provider that releases every button.
var Released Provider = ProviderFunc(func(s *State) {
	s.ReleaseAll()
})

const (
	selectDirections = 0x10
	selectButtons    = 0x20
)

// Joypad implements the P1 register.
type Joypad struct {
	state State

	// the lower nibble of P1 after the most recent update
	lines uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	return &Joypad{lines: 0x0f}
}

// Reset releases every button.
func (jp *Joypad) Reset() {
	jp.state.ReleaseAll()
	jp.lines = 0x0f
}

// Provide calls the provider and keeps the result for the next Update().
func (jp *Joypad) Provide(p Provider) {
	if p != nil {
		p.Provide(&jp.state)
	}
}

// State returns the current state of the buttons.
func (jp *Joypad) State() State {
	return jp.state
}

// Update the lower nibble of P1 from the button state and the selection bits.
// The joypad interrupt is requested if any of the lines go from high to low.
// Returns true if the interrupt was requested.
func (jp *Joypad) Update(mem chipbus.Memory) bool {
	p1 := mem.ChipRead(addresses.P1)
	sel := p1 & (selectDirections | selectButtons)

	lines := uint8(0x0f)
	if sel&selectDirections == 0 {
		for b := Right; b <= Down; b++ {
			if jp.state.pressed[b] {
				lines &^= 1 << uint(b)
			}
		}
	}
	if sel&selectButtons == 0 {
		for b := A; b <= Start; b++ {
			if jp.state.pressed[b] {
				lines &^= 1 << uint(b-A)
			}
		}
	}

	mem.ChipWrite(addresses.P1, 0xc0|sel|lines)

	falling := jp.lines&^lines != 0
	jp.lines = lines
	if falling {
		interrupts.Request(mem, interrupts.Joypad)
	}
	return falling
}
