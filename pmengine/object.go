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

// Package pmengine implements the player/missile positional engine: four
// 8-bit player shift registers and four 2-bit missile shift registers,
// each with independent position, size and graphics, rendering into a
// shared overlay buffer with mid-scanline retrigger semantics.
package pmengine

// PlayerLeftBorder and PlayerRightBorder bound the half-colour-clock range
// in which an object contributes pixels or collisions (spec.md invariant
// 2); their values are the reference silicon's own Player_Left_Border and
// Player_Right_Border, reproduced verbatim, not re-derived.
const (
	PlayerLeftBorder  = 4
	PlayerRightBorder = 380
)

// OverlayWidth is the width of the overlay render target, including the
// fill-in and player/missile offsets ahead of the visible region.
const OverlayWidth = 480

// stuckShifter is the sentinel DecodedSize value meaning the shift
// register has desynchronised and now repeats its current bit to the
// right border (spec.md §4.4 "stuck shifter"; §9 Open Question #1).
const stuckShifter = 8

// nibbleDoubleBits and nibbleQuadrupleBits expand a 4-bit nibble into its
// double-width or quadruple-width bit pattern, used to stretch a player's
// shift register to 2x or 4x size. Reproduced verbatim from the reference
// renderer's lookup tables.
var nibbleDoubleBits = [16]uint32{
	0x00, 0x03, 0x0c, 0x0f, 0x30, 0x33, 0x3c, 0x3f,
	0xc0, 0xc3, 0xcc, 0xcf, 0xf0, 0xf3, 0xfc, 0xff,
}

var nibbleQuadrupleBits = [16]uint32{
	0x0000, 0x000f, 0x00f0, 0x00ff, 0x0f00, 0x0f0f, 0x0ff0, 0x0fff,
	0xf000, 0xf00f, 0xf0f0, 0xf0ff, 0xff00, 0xff0f, 0xfff0, 0xffff,
}

// Object is one player or missile shifter.
type Object struct {
	Graphics uint8
	Size     uint8 // raw 2-bit size value as written to the register
	HPos     uint8

	DecodedSize     int // 0 (1x), 1 (2x), 2 (4x), or stuckShifter
	DecodedPosition int // half-colour-clock start, or -64 when untriggered

	DisplayMask uint8 // this object's bit in the shared overlay byte
	MeMask      uint8 // the bits this object's presence asserts on collision

	CollisionPlayer    uint8
	CollisionPlayfield uint8
	PlayerColMask      uint8
	PlayfieldColMask   uint8

	bitsize int // 8 for players, 2 for missiles
}

// NewPlayer returns a player object asserting displayMask in the overlay.
func NewPlayer(displayMask uint8) *Object {
	return newObject(displayMask, 8)
}

// NewMissile returns a missile object asserting displayMask in the overlay.
func NewMissile(displayMask uint8) *Object {
	return newObject(displayMask, 2)
}

func newObject(displayMask uint8, bitsize int) *Object {
	o := &Object{
		DisplayMask:      displayMask,
		MeMask:           displayMask,
		PlayerColMask:    0x0F,
		PlayfieldColMask: 0x0F,
		bitsize:          bitsize,
	}
	o.Reset()
	return o
}

// Reset clears position and graphics state on a GTIA reset.
func (o *Object) Reset() {
	o.Graphics = 0
	o.Size = 0
	o.DecodedSize = 0
	o.HPos = 0
	o.CollisionPlayer = 0
	o.CollisionPlayfield = 0
	o.DecodedPosition = -64
}

// RepositionObject sets the horizontal position without redrawing
// (spec.md §4.4 "Position write": the immediate half of the write handler).
func (o *Object) RepositionObject(val uint8) {
	o.HPos = val
	o.DecodedPosition = (int(val) - 0x20) << 1
}

// ResizeObject sets the size register without redrawing.
func (o *Object) ResizeObject(val uint8) {
	o.Size = val & 0x03
	switch o.Size {
	case 0, 2:
		o.DecodedSize = 0
	case 1:
		o.DecodedSize = 1
	case 3:
		o.DecodedSize = 2
	}
}

// ReshapeObject updates the graphics shift register without redrawing:
// bits already drawn into the overlay this line are left as they are, and
// the new value is used the next time the object is rendered.
func (o *Object) ReshapeObject(val uint8) {
	o.Graphics = val
}

// RemoveRightOf clears this object's bit from target at every half-colour-
// clock from max(DecodedPosition, retrigger) to its current right edge,
// clipped to the player borders.
func (o *Object) RemoveRightOf(target []uint8, retrigger int) {
	if target == nil {
		return
	}
	first := o.DecodedPosition
	last := o.DecodedPosition + (o.bitsize << uint(o.decodedSizeShift()+1))
	if first < retrigger {
		first = retrigger
	}
	if last > PlayerRightBorder {
		last = PlayerRightBorder
	}
	if first < PlayerLeftBorder {
		first = PlayerLeftBorder
	}
	mask := ^o.DisplayMask
	for p := first; p < last; p++ {
		if p >= 0 && p < len(target) {
			target[p] &= mask
		}
	}
}

// decodedSizeShift returns the shift amount RemoveRightOf's extent
// computation uses; the stuck-shifter sentinel behaves like a 1x object
// for this purpose since its repeated bit is handled by Render directly.
func (o *Object) decodedSizeShift() int {
	if o.DecodedSize == stuckShifter {
		return 0
	}
	return o.DecodedSize
}

// Render draws graphics into target at DecodedPosition+deltapos, having
// already shifted deltabits bits out of the register, per the original
// renderer's nibble-doubling/quadrupling scale-up and the stuck-shifter
// repeat-to-border special case.
func (o *Object) Render(target []uint8, graphics uint8, deltapos, deltabits int) {
	if graphics == 0 || target == nil {
		return
	}

	hpos := o.DecodedPosition + deltapos
	mask := o.DisplayMask
	bitsize := o.bitsize
	graf := uint32(graphics)

	switch o.DecodedSize {
	case 0:
		graf <<= 24
	case 1:
		graf = (nibbleDoubleBits[graf>>4] << 24) | (nibbleDoubleBits[graf&0x0F] << 16)
		bitsize <<= 1
	case 2:
		graf = (nibbleQuadrupleBits[graf>>4] << 16) | nibbleQuadrupleBits[graf&0x0F]
		bitsize <<= 2
	case stuckShifter:
		if (graf<<uint(deltabits))&0x80 != 0 {
			for p := PlayerLeftBorder; p < PlayerRightBorder; p++ {
				if p >= 0 && p < len(target) {
					target[p] |= mask
				}
			}
		}
		return
	default:
		graf = 0
	}

	if bitsize < deltabits {
		return
	}
	graf <<= uint(deltabits)
	bitsize -= deltabits

	if hpos < PlayerLeftBorder {
		missing := (PlayerLeftBorder - hpos) >> 1
		if missing >= 32 {
			return
		}
		graf &= 0xFFFFFFFF >> uint(missing)
	} else if hpos+64 > PlayerRightBorder {
		missing := (hpos + 64 - PlayerRightBorder) >> 1
		if missing >= 32 {
			return
		}
		graf &= 0xFFFFFFFF << uint(missing)
	}

	pmpos := hpos
	for {
		if graf&0x80000000 != 0 {
			if pmpos >= 0 && pmpos < len(target) {
				target[pmpos] |= mask
			}
			if pmpos+1 >= 0 && pmpos+1 < len(target) {
				target[pmpos+1] |= mask
			}
		}
		pmpos += 2
		graf <<= 1
		bitsize--
		if bitsize == 0 || graf == 0 {
			break
		}
	}
}

// RenderCurrent draws the object with its current graphics register at its
// current position, with no retrigger offset — the per-scanline render
// pass entry point.
func (o *Object) RenderCurrent(target []uint8) {
	o.Render(target, o.Graphics, 0, 0)
}
