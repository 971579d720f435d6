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

// Package display implements the colour/player-missile merger's
// display-generator matrix: the eleven post-processing variants a
// scanline's priority-control value and colour-fiddling state select
// between, each merging a group of four half-colour-clocks' worth of
// playfield index, object overlay and priority-engine output into final
// colour bytes.
package display

import "github.com/thor8bit/chipcore/colortable"

// intermediateLut combines four consecutive half-colour-clocks' worth of
// pre-computed colour slots into one intermediate value for the "processed"
// modes (0x40, 0x80, 0xC0 and the strange fallback): row n is the table
// for phase n of the group, and combine ORs all four rows' entries into
// one value. Every processed mode uses the same table this way, matching
// the reference resolver's own reuse of one table across generators.
type intermediateLut [4][16]uint8

// lutUnfiddled and lutFiddled are the two intermediate-resolver tables,
// reproduced verbatim from the reference chip's LUT constructors (indexed
// by colortable.Slot, whose ordering matches PreComputedColor exactly).
var lutUnfiddled = intermediateLut{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x08, 0x0c, 0x00, 0x04, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x08, 0x0c, 0x00, 0x04, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00},
}

var lutFiddled = intermediateLut{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x08, 0x08, 0x08, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x04, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x02, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00},
}

// combine ORs the four phases of lut together over one four-half-colour-
// clock group, producing the shared intermediate value mode 0x40 uses
// directly as luminance bits and mode 0xC0 shifts into a hue nibble.
func (lut intermediateLut) combine(pf [4]colortable.Slot) uint8 {
	return lut[0][pf[0]] | lut[1][pf[1]] | lut[2][pf[2]] | lut[3][pf[3]]
}

// strangeNibbleMapping maps the strange mode's combined two-bit value back
// to a playfield slot; the reference silicon maps even the background
// level to Playfield0, not Background, which is the "strange" part.
var strangeNibbleMapping = [4]colortable.Slot{
	colortable.Playfield0, colortable.Playfield1, colortable.Playfield2, colortable.Playfield3,
}
