// This file is part of chipcore.
//
// chipcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chipcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chipcore.  If not, see <https://www.gnu.org/licenses/>.

// Package input is a minimal implementation of cmm.Input: four joystick
// triggers and the three console switches (Start, Select, Option). The
// keyboard and joystick devices themselves, and the wiring that turns a
// host's key or button events into calls here, are out of core scope; this
// package only holds the latched state the CMM register file reads.
package input

import "fmt"

// ConsoleSwitch names one of the three console keys the CMM's console
// switches register exposes.
type ConsoleSwitch uint8

const (
	Start ConsoleSwitch = 1 << iota
	Select
	Option
)

func (s ConsoleSwitch) String() string {
	switch s {
	case Start:
		return "Start"
	case Select:
		return "Select"
	case Option:
		return "Option"
	default:
		return fmt.Sprintf("ConsoleSwitch(%#02x)", uint8(s))
	}
}

// Pad holds the four joystick triggers and the console switches. The zero
// value is not usable; construct with NewPad.
type Pad struct {
	triggers [4]bool

	// switches is kept in the register's own negated form: a bit is 1 when
	// the corresponding key is up, and cleared while it is held down,
	// mirroring the reference keyboard driver's ConsoleKeyFlags.
	switches uint8
}

// NewPad returns a Pad with every trigger released and every console
// switch up, the power-on state.
func NewPad() *Pad {
	return &Pad{switches: uint8(Start | Select | Option)}
}

// SetTrigger latches trigger index (0..3) as pressed or released.
func (p *Pad) SetTrigger(index int, pressed bool) {
	p.triggers[index] = pressed
}

// Trigger reports whether trigger index is currently pressed. The CMM
// register file negates this itself when it builds the register byte.
func (p *Pad) Trigger(index int) bool {
	return p.triggers[index]
}

// SetConsoleSwitch latches a console switch as held down or released.
func (p *Pad) SetConsoleSwitch(sw ConsoleSwitch, pressed bool) {
	if pressed {
		p.switches &^= uint8(sw)
		return
	}
	p.switches |= uint8(sw)
}

// ConsoleSwitches returns the register byte the CMM's console switches
// read exposes directly: each bit is 1 while the matching switch is up.
func (p *Pad) ConsoleSwitches() uint8 {
	return p.switches
}
