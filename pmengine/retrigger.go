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

package pmengine

// RetriggerObject handles a mid-scanline position write (spec.md §4.4
// "Position write"): if the render pointer has not yet reached the
// object's former position it is a plain reposition; otherwise the bits
// already shifted out are preserved and the remainder is repainted from
// the new position, producing the "retrigger" visual (spec.md §8 scenario
// 3).
func (o *Object) RetriggerObject(target []uint8, val uint8, retrigger int) {
	deltabits := int(val) - int(o.HPos)

	if deltabits > 0 && o.DecodedPosition <= retrigger {
		deltabits = (deltabits + (1 << uint(o.DecodedSize)) - 1) >> uint(o.DecodedSize)

		var grafold uint8
		if deltabits < o.bitsize {
			grafold = o.Graphics << uint(deltabits)
		}

		o.RepositionObject(val)
		o.RemoveRightOf(target, retrigger)
		o.Render(target, grafold|o.Graphics, 0, 0)
		return
	}

	// Moved left of the trigger position, or not yet triggered at all:
	// just remove and redraw from scratch.
	o.RemoveRightOf(target, retrigger)
	o.RepositionObject(val)
	o.RenderCurrent(target)
}

// RetriggerSize handles a mid-scanline size write (spec.md §4.4 "Size
// write"). The phase at which switching between 2x/4x and the 1x-with-
// special-value-2 size produces a stuck shifter is reproduced verbatim
// from the reference silicon's lookup, per §9 Open Question #1 — it is
// not re-derived.
func (o *Object) RetriggerSize(target []uint8, val uint8, retrigger int) {
	deltabits := retrigger - o.DecodedPosition
	if deltabits < 0 || (val&0x03) == o.Size {
		return
	}

	deltapos := deltabits
	deltabits >>= uint(o.DecodedSize + 1)
	if deltabits >= o.bitsize {
		return
	}

	oldSize := o.DecodedSize

	o.RemoveRightOf(target, retrigger)
	o.ResizeObject(val)

	missingbits := deltabits << uint(o.DecodedSize)

	var phase int
	if oldSize == 0 || o.DecodedSize == 0 {
		phase = 0
	} else {
		phase = (deltapos >> 1) & 1
	}

	if (val & 0x03) == 2 {
		t := (deltapos >> 1) & 3
		if (oldSize == 1 && (t&1) == 1) || (oldSize == 2 && (t == 1 || t == 2)) {
			o.DecodedSize = stuckShifter
		}
	}

	o.Render(target, o.Graphics, deltapos, missingbits+phase)
}
