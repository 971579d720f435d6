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
	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/pmengine"
	"github.com/thor8bit/chipcore/priority"
)

// eightyTranslate maps the combined four-phase intermediate value (0-15)
// of mode 0x80's indexed-bitmap display to the pre-computed colour slot it
// selects, reproducing the first sixteen entries of the reference
// generator's translate table — the entries actually reachable once the
// one-colour-clock delay line that shifts the remaining sixteen into play
// is left unmodelled (see DisplayGenerator80Base in DESIGN.md).
var eightyTranslate = [16]colortable.Slot{
	colortable.Player0, colortable.Player1, colortable.Player2, colortable.Player3,
	colortable.Playfield0, colortable.Playfield1, colortable.Playfield2, colortable.Playfield3,
	colortable.Background, colortable.Background, colortable.Background, colortable.Background,
	colortable.Playfield0, colortable.Playfield1, colortable.Playfield2, colortable.Playfield3,
}

// PostProcessClock merges one group of four consecutive half-colour-clocks
// of playfield slots and player/missile overlay bits into four final
// colour bytes, dispatching on the line's selected Variant. out must have
// room for at least 4 bytes; pf and player each cover the same four
// half-colour-clocks in order.
func PostProcessClock(v Variant, pt *priority.Tables, ct *colortable.Table, players, missiles [4]*pmengine.Object, pf [4]colortable.Slot, player [4]uint8, out []uint8) {
	switch v {
	case Mode00Unfiddled:
		directClock(pt, ct, players, missiles, priority.CollisionMaskUnfiddled, pf, player, out)
	case Mode00Fiddled, Mode00FiddledArtefacted:
		// Mode00FiddledArtefacted reuses the plain fiddled path: the
		// reference generator's extra artefacting step runs a one-pixel
		// delay line tracking the last two generated colours to detect
		// 01/10 edges, which this translation does not reproduce (see
		// DESIGN.md).
		directClock(pt, ct, players, missiles, priority.CollisionMaskFiddled, pf, player, out)
	case Mode40Unfiddled:
		luminanceClock(pt, ct, lutUnfiddled, pf, player, out)
	case Mode40Fiddled:
		luminanceClock(pt, ct, lutFiddled, pf, player, out)
	case ModeC0Unfiddled:
		hueClock(pt, ct, lutUnfiddled, pf, player, out)
	case ModeC0Fiddled:
		hueClock(pt, ct, lutFiddled, pf, player, out)
	case Mode80Unfiddled:
		indexedBitmapClock(pt, ct, players, missiles, lutUnfiddled, priority.CollisionMaskUnfiddled, pf, player, out)
	case Mode80Fiddled:
		indexedBitmapClock(pt, ct, players, missiles, lutFiddled, priority.CollisionMaskFiddled, pf, player, out)
	case StrangeUnfiddled:
		strangeClock(pt, ct, players, missiles, lutUnfiddled, pf, player, out)
	case StrangeFiddled:
		strangeClock(pt, ct, players, missiles, lutFiddled, pf, player, out)
	}
}

// directClock implements the three unprocessed (PRIOR & 0xc0 == 0) modes'
// common shape: each half-colour-clock resolves independently through the
// priority engine when a player or missile is present there, or reads the
// colour table directly otherwise.
func directClock(pt *priority.Tables, ct *colortable.Table, players, missiles [4]*pmengine.Object, mask [16]uint8, pf [4]colortable.Slot, player [4]uint8, out []uint8) {
	for i := 0; i < 4; i++ {
		if player[i] != 0 {
			priority.UpdateCollisions(pf[i], player[i], mask, players, missiles)
			out[i] = pt.PixelColor(pf[i], player[i], ct.Get(pf[i]), ct)
		} else {
			out[i] = ct.Get(pf[i])
		}
	}
}

// luminanceClock implements mode 0x40 (graphics 9, a 9-bit luminance
// bitmap): the four half-colour-clocks' playfield slots combine into a
// single luminance nibble shared by the whole group, which or's into the
// background colour's value bits; players always have priority and are
// never blocked by the playfield in this mode, so no collision mask does
// any work here (matching the reference generator's all-zero mask).
func luminanceClock(pt *priority.Tables, ct *colortable.Table, lut intermediateLut, pf [4]colortable.Slot, player [4]uint8, out []uint8) {
	combined := lut.combine(pf)
	background := ct.Get(colortable.Background)

	for i := 0; i < 4; i++ {
		if player[i] == 0 {
			out[i] = combined | background
			continue
		}

		playdat := player[i]
		bgcolor := background
		if playdat&0xf0 != 0 && pt.MissilePF3 {
			bgcolor = ct.Get(colortable.Playfield3)
			playdat &= 0x0f
		}
		if playdat != 0 {
			out[i] = pt.PixelColor(colortable.Background, player[i], combined|bgcolor, ct)
		} else {
			out[i] = combined | bgcolor
		}
	}
}

// hueClock implements mode 0xC0 (graphics 11: hue taken from the bitmap,
// value taken from the background colour), sharing luminanceClock's
// intermediate combine step but reinterpreting the result as a hue index
// instead of luminance bits.
func hueClock(pt *priority.Tables, ct *colortable.Table, lut intermediateLut, pf [4]colortable.Slot, player [4]uint8, out []uint8) {
	combined := lut.combine(pf)

	baseHue := func(bg uint8) uint8 {
		hue := combined << 4
		if hue != 0 {
			return hue | bg
		}
		return hue | (bg & 0xf0)
	}

	background := ct.Get(colortable.Background)

	for i := 0; i < 4; i++ {
		hue := baseHue(background)
		if player[i] == 0 {
			out[i] = hue
			continue
		}

		playdat := player[i]
		if playdat&0xf0 != 0 && pt.MissilePF3 {
			hue = baseHue(ct.Get(colortable.Playfield3))
			playdat &= 0x0f
		}
		if playdat != 0 {
			out[i] = pt.PixelColor(colortable.Background, player[i], hue, ct)
		} else {
			out[i] = hue
		}
	}
}

// indexedBitmapClock implements mode 0x80 (graphics 10: an eight-colour
// indexed bitmap). Declared simplification: the reference generator keeps
// a one-colour-clock delay line (a shift register holding the previous
// group's last pixel) so bitmap edges land on the correct half-colour-
// clock boundary, and a 32-entry translate table whose second half
// special-cases runs of background; this translation combines the group
// without the delay and uses only the reachable first half of that table
// (see DESIGN.md).
func indexedBitmapClock(pt *priority.Tables, ct *colortable.Table, players, missiles [4]*pmengine.Object, lut intermediateLut, mask [16]uint8, pf [4]colortable.Slot, player [4]uint8, out []uint8) {
	slot := eightyTranslate[lut.combine(pf)&0x0f]

	for i := 0; i < 4; i++ {
		if player[i] != 0 {
			priority.UpdateCollisions(slot, player[i], mask, players, missiles)
			out[i] = pt.PixelColor(slot, player[i], ct.Get(slot), ct)
		} else {
			out[i] = ct.Get(slot)
		}
	}
}

// strangeClock implements the "strange" fallback mode a processed mode
// enters when disabled mid-line (spec.md §4.6, §8 scenario 5): only the
// background-versus-frame distinction survives, and surviving playfield
// colours are re-mapped through a four-entry table where even the
// background level maps to Playfield0.
func strangeClock(pt *priority.Tables, ct *colortable.Table, players, missiles [4]*pmengine.Object, lut intermediateLut, pf [4]colortable.Slot, player [4]uint8, out []uint8) {
	var remapped [4]colortable.Slot
	if pf[0] == colortable.Background {
		remapped = [4]colortable.Slot{colortable.Background, colortable.Background, colortable.Background, colortable.Background}
	} else {
		combined := lut.combine(pf)
		remapped[0] = strangeNibbleMapping[(combined>>2)&0x03]
		remapped[1] = remapped[0]
		remapped[2] = strangeNibbleMapping[combined&0x03]
		remapped[3] = remapped[2]
	}

	for i := 0; i < 4; i++ {
		if player[i] != 0 {
			priority.UpdateCollisions(remapped[i], player[i], priority.CollisionMaskUnfiddled, players, missiles)
			out[i] = pt.PixelColor(colortable.Background, player[i], ct.Get(remapped[i]), ct)
		} else {
			out[i] = ct.Get(remapped[i])
		}
	}
}
