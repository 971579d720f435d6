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

package display

import (
	"testing"

	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/pmengine"
	"github.com/thor8bit/chipcore/priority"
)

func newObjects() ([4]*pmengine.Object, [4]*pmengine.Object) {
	players := [4]*pmengine.Object{
		pmengine.NewPlayer(pmengine.BitPlayer0), pmengine.NewPlayer(pmengine.BitPlayer1),
		pmengine.NewPlayer(pmengine.BitPlayer2), pmengine.NewPlayer(pmengine.BitPlayer3),
	}
	missiles := [4]*pmengine.Object{
		pmengine.NewMissile(pmengine.BitMissile0), pmengine.NewMissile(pmengine.BitMissile1),
		pmengine.NewMissile(pmengine.BitMissile2), pmengine.NewMissile(pmengine.BitMissile3),
	}
	return players, missiles
}

// TestSelectUnprocessedWhenNoPriorityEverSet covers the ordinary case:
// priority-control 0 with no fiddling selects the plain unprocessed
// unfiddled variant.
func TestSelectUnprocessedWhenNoPriorityEverSet(t *testing.T) {
	got := Select(0x00, false, false, true, 0x00)
	if got != Mode00Unfiddled {
		t.Fatalf("Select = %v, want %v", got, Mode00Unfiddled)
	}
}

// TestSelectProcessedModes covers the three straightforward processed-mode
// picks, unfiddled and fiddled.
func TestSelectProcessedModes(t *testing.T) {
	cases := []struct {
		prior   uint8
		fiddled bool
		want    Variant
	}{
		{0x40, false, Mode40Unfiddled},
		{0x40, true, Mode40Fiddled},
		{0x80, false, Mode80Unfiddled},
		{0x80, true, Mode80Fiddled},
		{0xc0, false, ModeC0Unfiddled},
		{0xc0, true, ModeC0Fiddled},
	}
	for _, c := range cases {
		got := Select(c.prior, c.fiddled, false, true, 0x00)
		if got != c.want {
			t.Errorf("Select(%#x, fiddled=%v) = %v, want %v", c.prior, c.fiddled, got, c.want)
		}
	}
}

// TestStrangeModeScenario covers spec.md §8 scenario 5: priority-control
// 0x40 at the start of a line, then dropped to 0x00 mid-line. The
// remainder of the line must select the strange fallback, not the plain
// unprocessed variant, because the line's accumulated initial priority
// still carries the 0x40 bit.
func TestStrangeModeScenario(t *testing.T) {
	var initialPrior uint8
	initialPrior = AccumulateInitialPrior(initialPrior, 0x40)
	_ = Select(0x40, false, false, true, initialPrior)

	initialPrior = AccumulateInitialPrior(initialPrior, 0x00)
	got := Select(0x00, false, false, true, initialPrior)

	if got != StrangeUnfiddled {
		t.Fatalf("Select after mid-line drop to 0x00 = %v, want %v", got, StrangeUnfiddled)
	}
}

// TestStrangeClockBackgroundPassthrough covers the strange generator's
// special case: when the first half-colour-clock of the group is the
// frame background, the whole group is forced to background regardless of
// what the other three slots held.
func TestStrangeClockBackgroundPassthrough(t *testing.T) {
	ct := colortable.NewTable()
	ct.SetBackground(0x02)
	pt := priority.NewTables()
	players, missiles := newObjects()

	pf := [4]colortable.Slot{colortable.Background, colortable.Playfield3, colortable.Playfield3, colortable.Playfield3}
	var player [4]uint8
	var out [4]uint8

	strangeClock(pt, ct, players, missiles, lutUnfiddled, pf, player, out[:])

	for i, b := range out {
		if b != 0x02 {
			t.Errorf("out[%d] = %#x, want background %#x", i, b, 0x02)
		}
	}
}

// TestDirectClockPlayerWinsOverPlayfield exercises the unprocessed-mode
// priority path: priority-control bit 0 set, a player active over
// playfield 0, player colour must win.
func TestDirectClockPlayerWinsOverPlayfield(t *testing.T) {
	ct := colortable.NewTable()
	ct.SetPlayfieldColor(0, 0x10)
	ct.SetPlayerColor(0, 0x20)
	pt := priority.NewTables()
	pt.Rebuild(0x01)
	players, missiles := newObjects()

	pf := [4]colortable.Slot{colortable.Playfield0, colortable.Playfield0, colortable.Playfield0, colortable.Playfield0}
	player := [4]uint8{pmengine.BitPlayer0, 0, 0, 0}
	var out [4]uint8

	directClock(pt, ct, players, missiles, priority.CollisionMaskUnfiddled, pf, player, out[:])

	if out[0] != 0x20 {
		t.Fatalf("out[0] = %#x, want player colour %#x", out[0], 0x20)
	}
	if out[1] != 0x10 {
		t.Fatalf("out[1] = %#x, want playfield colour %#x", out[1], 0x10)
	}
}
