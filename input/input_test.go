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

package input

import "testing"

func TestNewPadIsAllReleased(t *testing.T) {
	p := NewPad()
	for i := 0; i < 4; i++ {
		if p.Trigger(i) {
			t.Fatalf("trigger %d pressed at power-on, want released", i)
		}
	}
	if got, want := p.ConsoleSwitches(), uint8(Start|Select|Option); got != want {
		t.Fatalf("ConsoleSwitches at power-on = %#02x, want %#02x", got, want)
	}
}

func TestSetTriggerLatches(t *testing.T) {
	p := NewPad()
	p.SetTrigger(2, true)
	if !p.Trigger(2) {
		t.Fatal("Trigger(2) = false after SetTrigger(2, true)")
	}
	if p.Trigger(0) || p.Trigger(1) || p.Trigger(3) {
		t.Fatal("other triggers disturbed by SetTrigger(2, true)")
	}
	p.SetTrigger(2, false)
	if p.Trigger(2) {
		t.Fatal("Trigger(2) = true after SetTrigger(2, false)")
	}
}

func TestSetConsoleSwitchClearsBitWhilePressed(t *testing.T) {
	p := NewPad()
	p.SetConsoleSwitch(Select, true)
	if got, want := p.ConsoleSwitches(), uint8(Start|Option); got != want {
		t.Fatalf("ConsoleSwitches with Select held = %#02x, want %#02x", got, want)
	}
	p.SetConsoleSwitch(Select, false)
	if got, want := p.ConsoleSwitches(), uint8(Start|Select|Option); got != want {
		t.Fatalf("ConsoleSwitches after releasing Select = %#02x, want %#02x", got, want)
	}
}

func TestConsoleSwitchStringer(t *testing.T) {
	if got := Start.String(); got != "Start" {
		t.Fatalf("Start.String() = %q, want %q", got, "Start")
	}
}
