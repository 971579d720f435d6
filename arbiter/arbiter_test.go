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

package arbiter

import (
	"testing"

	"github.com/thor8bit/chipcore/clocks"
)

func TestClearWipesReservations(t *testing.T) {
	a := NewArbiter(104)
	a.Reserve(10, 5)
	a.Clear()
	for c := 0; c < clocks.CyclesPerLine; c++ {
		if a.IsBusy(c) {
			t.Fatalf("cycle %d still busy after Clear", c)
		}
	}
}

func TestReserveMarksExactRange(t *testing.T) {
	a := NewArbiter(104)
	a.Reserve(20, 3)
	for c := 0; c < clocks.CyclesPerLine; c++ {
		want := c >= 20 && c < 23
		if a.IsBusy(c) != want {
			t.Errorf("cycle %d: busy=%v want=%v", c, a.IsBusy(c), want)
		}
	}
}

func TestReserveRefreshTwoCycles(t *testing.T) {
	a := NewArbiter(104)
	a.ReserveRefresh(9)
	if !a.IsBusy(9) || !a.IsBusy(10) {
		t.Fatal("refresh should reserve cycles 9 and 10")
	}
	if a.IsBusy(11) {
		t.Fatal("refresh must not spill past its two cycles")
	}
}

// TestWSyncEarlyHaltsWithinLine covers spec.md §8 scenario 4's first half: a
// write to WSYNC before the release slot halts the CPU only up to that slot
// within the same line.
func TestWSyncEarlyHaltsWithinLine(t *testing.T) {
	a := NewArbiter(104)
	a.Clear()
	a.WSync(50)
	for c := 50; c < 104; c++ {
		if !a.IsBusy(c) {
			t.Errorf("cycle %d should be halted by WSYNC at 50", c)
		}
	}
	if a.IsBusy(104) {
		t.Fatal("release slot itself must not be held busy")
	}
	if a.haltCarry != 0 {
		t.Fatal("an early WSYNC must not carry into the next line")
	}
}

// TestWSyncLateCarriesToNextLine covers the second half of scenario 4: a
// write at or beyond the release slot halts until the release slot of the
// following line.
func TestWSyncLateCarriesToNextLine(t *testing.T) {
	a := NewArbiter(104)
	a.WSync(104)
	if a.haltCarry != 104 {
		t.Fatalf("haltCarry = %d, want 104", a.haltCarry)
	}

	a.Clear()
	if !a.IsBusy(0) {
		t.Fatal("carried halt must block cycle 0 of the next line")
	}
	if !a.IsBusy(103) {
		t.Fatal("carried halt must block up to the cycle before the release slot")
	}
	if a.IsBusy(104) {
		t.Fatal("carried halt must not extend to the release slot")
	}
}

func TestWSyncWellPastReleaseCarriesToReleaseSlot(t *testing.T) {
	a := NewArbiter(104)
	a.WSync(110)
	if a.haltCarry != 104 {
		t.Fatalf("haltCarry = %d, want 104", a.haltCarry)
	}

	a.Clear()
	for c := 0; c < 104; c++ {
		if !a.IsBusy(c) {
			t.Errorf("cycle %d should still be held by the carried halt", c)
		}
	}
	if a.IsBusy(104) {
		t.Fatal("carried halt must not extend past the release slot")
	}
}

// TestCyclesPerLineAccounted covers the invariant of spec.md §8: for every
// line and cycle, CPU execution and DMA/halt steal partition the 114 cycles
// exactly, with no cycle double-booked or skipped by construction.
func TestCyclesPerLineAccounted(t *testing.T) {
	a := NewArbiter(104)
	a.Clear()
	sched := NewSchedule(40)
	a.ReserveCycles(sched.CyclesFor())
	a.WSync(60)

	stolen := 0
	for c := 0; c < clocks.CyclesPerLine; c++ {
		if a.IsBusy(c) {
			stolen++
		}
	}
	cpuCycles := clocks.CyclesPerLine - stolen
	if cpuCycles+stolen != clocks.CyclesPerLine {
		t.Fatalf("cpu(%d) + stolen(%d) != %d", cpuCycles, stolen, clocks.CyclesPerLine)
	}
}
