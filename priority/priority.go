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

// Package priority implements the colour/player-missile merger's priority
// engine: a set of lookup tables rebuilt whenever the priority-control
// register is written, and the per-pixel resolver that combines a
// playfield colour index with the player/missile presence mask into the
// final colour and updates the collision registers.
package priority

import "github.com/thor8bit/chipcore/colortable"

// tableEntries mirrors colortable's sixteen pre-computed colour slots.
const tableEntries = 16

// Tables holds every value the priority-control register (spec.md §6
// offset 0x1B, "PRIOR") derives, rebuilt in full on each write rather than
// computed per pixel.
type Tables struct {
	// MissilePF3 is priority-control bit 4: when set, any missile whose
	// bits are up is treated as a fifth, combined "player" sharing the
	// priority and colour of playfield 3, instead of each missile sharing
	// its own player's priority.
	MissilePF3 bool

	player0Lookup     [tableEntries]colortable.Slot
	player2Lookup     [tableEntries]colortable.Slot
	player4Lookup     [tableEntries]colortable.Slot
	player0LookupPF01 [tableEntries]colortable.Slot
	player2LookupPF01 [tableEntries]colortable.Slot
	player4LookupPF01 [tableEntries]colortable.Slot
	player0LookupPF23 [tableEntries]colortable.Slot
	player2LookupPF23 [tableEntries]colortable.Slot
	player4LookupPF23 [tableEntries]colortable.Slot

	playfield01Mask [tableEntries]uint8
	playfield23Mask [tableEntries]uint8
}

// CollisionMaskUnfiddled and CollisionMaskFiddled map a playfield colour
// slot to the bit a player/missile collides with, for ordinary and
// colour-fiddled display variants respectively (spec.md §4.5). Fiddled
// collisions are reported strangely: only playfield 1 (in any of its
// fiddled guises) registers, and it registers as a collision with
// playfield 2.
var CollisionMaskUnfiddled = [tableEntries]uint8{
	0x00, 0x00, 0x00, 0x00,
	0x01, 0x02, 0x04, 0x08,
	0x00, 0x02, 0x02, 0x02,
	0x00, 0x00, 0x00, 0x00,
}

var CollisionMaskFiddled = [tableEntries]uint8{
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x04, 0x00, 0x00,
	0x00, 0x04, 0x04, 0x04,
	0x00, 0x00, 0x00, 0x00,
}

// NewTables returns priority tables rebuilt for priority-control value 0,
// the power-on setting.
func NewTables() *Tables {
	t := &Tables{}
	t.Rebuild(0x00)
	return t
}

// Rebuild recomputes every lookup table from a freshly-written
// priority-control register value. Ported without structural change from
// the reference chip's own priority-engine rebuild: the four priority
// tiers it decodes (player-over-playfield, 01-over-23, playfield-over-
// player, 01-under-23) and the player-pair combine bit are spec.md §4.5's
// "priority ladder".
func (t *Tables) Rebuild(pri uint8) {
	t.MissilePF3 = pri&0x10 != 0

	pl02beatspl := pri&0x20 == 0 // player 0,2 beat player 1,3 unless combined

	var pl01beatspf, pl23beatspf, pf01beatspl, pf23beatspl, pfbeatspl, plbeatspf bool

	if pri&0x01 != 0 {
		pl01beatspf = true
		pl23beatspf = true
		plbeatspf = true
	}
	if pri&0x02 != 0 {
		pl01beatspf = true
		pf23beatspl = true
	}
	if pri&0x04 != 0 {
		pf01beatspl = true
		pf23beatspl = true
		pfbeatspl = true
	}
	if pri&0x08 != 0 {
		pf01beatspl = true
		pl23beatspf = true
	}

	for pm := 0; pm < tableEntries; pm++ {
		pl0, pl2, pl4 := colortable.Black, colortable.Black, colortable.Black

		if pm&0x08 != 0 {
			pl2 = colortable.Player3
		}
		if pm&0x04 != 0 {
			if pm&0x08 != 0 && !pl02beatspl {
				pl2 = colortable.Player2Or3
			} else {
				pl2 = colortable.Player2
			}
		}
		if pm&0x02 != 0 {
			pl2 = colortable.Black
			pl0 = colortable.Player1
		}
		if pm&0x01 != 0 {
			pl2 = colortable.Black
			if pm&0x02 != 0 && !pl02beatspl {
				pl0 = colortable.Player0Or1
			} else {
				pl0 = colortable.Player0
			}
		}
		if pm&0x10 != 0 {
			pl4 = colortable.Playfield3
			if pm&0x03 != 0 && !pfbeatspl {
				pl4 = colortable.Black
			}
			if pm&0x0c != 0 && pl23beatspf {
				pl4 = colortable.Black
			}
			if pf23beatspl {
				pl2 = colortable.Black
			}
			if pfbeatspl {
				pl0 = colortable.Black
			}
		}

		t.player0Lookup[pm] = pl0
		t.player2Lookup[pm] = pl2
		t.player4Lookup[pm] = pl4

		t.player0LookupPF01[pm] = pl0
		t.player0LookupPF23[pm] = pl0
		t.player2LookupPF01[pm] = pl2
		t.player2LookupPF23[pm] = pl2
		t.player4LookupPF01[pm] = pl4
		t.player4LookupPF23[pm] = pl4

		if pf01beatspl {
			t.player0LookupPF01[pm] = colortable.Black
		}
		if !plbeatspf {
			t.player2LookupPF01[pm] = colortable.Black
		}
		if pf23beatspl {
			t.player2LookupPF23[pm] = colortable.Black
		}
		if pfbeatspl {
			t.player0LookupPF23[pm] = colortable.Black
		}

		mask01 := uint8(0xff)
		if pm&0x03 != 0 && pl01beatspf {
			mask01 = 0
		}
		if pm&0x0c != 0 && plbeatspf {
			mask01 = 0
		}
		if pm&0x10 != 0 && (pfbeatspl || (!pf01beatspl && pm&0x03 == 0)) {
			mask01 = 0
		}
		t.playfield01Mask[pm] = mask01

		mask23 := uint8(0xff)
		if pm&0x03 != 0 && !pfbeatspl {
			mask23 = 0
		}
		if pm&0x0c != 0 && pl23beatspf {
			mask23 = 0
		}
		if pm&0x10 != 0 {
			mask23 = 0
		}
		t.playfield23Mask[pm] = mask23
	}
}

// combinePM folds the raw eight-bit player/missile presence mask (four
// player bits, four missile bits) into the four-bit index the lookup
// tables are keyed by: when missiles act as a fifth combined player, bit 4
// reports "any missile"; otherwise each missile's bit is or'ed into its
// own player's bit.
func (t *Tables) combinePM(pmPixel uint8) int {
	if pmPixel&0xf0 != 0 && t.MissilePF3 {
		return int(pmPixel&0x0f) | 0x10
	}
	return int(pmPixel&0x0f) | int(pmPixel>>4)
}

// PixelColor resolves one pixel's final colour byte given the playfield's
// pre-computed colour slot (which selects which priority tier and mask
// apply), the player/missile presence mask covering it, and the colour
// byte to start from — ordinarily ct.Get(pfPixel), but the processed
// display modes (§4.6) pass a colour they have already synthesized from
// several half-colour-clocks instead. Ported without structural change
// from the reference chip's per-pixel priority resolver, including the
// colour-fiddling special case for Playfield1Fiddled.
func (t *Tables) PixelColor(pfPixel colortable.Slot, pmPixel uint8, pfColor uint8, ct *colortable.Table) uint8 {
	pm := t.combinePM(pmPixel)
	pfcol := pfColor

	switch pfPixel {
	case colortable.Playfield0, colortable.Playfield1:
		pfcol &= t.playfield01Mask[pm]
		pfcol |= ct.Get(t.player0LookupPF01[pm])
		pfcol |= ct.Get(t.player2LookupPF01[pm])
		pfcol |= ct.Get(t.player4LookupPF01[pm])
	case colortable.Playfield1Fiddled, colortable.PlayfieldArtifact1, colortable.PlayfieldArtifact2:
		pfcol = ct.Get(colortable.Playfield2)
		fallthrough
	case colortable.Playfield2, colortable.Playfield3:
		pfcol &= t.playfield23Mask[pm]
		pfcol |= ct.Get(t.player0LookupPF23[pm])
		pfcol |= ct.Get(t.player2LookupPF23[pm])
		pfcol |= ct.Get(t.player4LookupPF23[pm])
	default:
		pfcol = 0
		pfcol |= ct.Get(t.player0Lookup[pm])
		pfcol |= ct.Get(t.player2Lookup[pm])
		pfcol |= ct.Get(t.player4Lookup[pm])
	}

	if pfPixel == colortable.Playfield1Fiddled {
		pfcol = (pfcol & 0xf0) | (ct.Get(pfPixel) & 0x0f)
	}

	return pfcol
}
