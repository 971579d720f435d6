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

package dlc

import "github.com/thor8bit/chipcore/arbiter"

// ModeKind describes one of the sixteen display-list mode-line kinds:
// its scanline count, its playfield DMA width, the byte-to-output shift,
// whether it consumes the character generator, and whether it is a
// "fiddled" (hi-res, colour-artefacting) mode. Mode 0 (blank) carries its
// scanline count in the opcode itself, not here; ScanLines is 0 for it.
type ModeKind struct {
	ScanLines int
	Width     arbiter.Width
	DMAShift  uint8
	CharMode  bool
	Fiddle    bool
}

// Modes is the fixed table of sixteen mode-line kinds, indexed by opcode
// lower nibble. Scanline counts and DMA widths follow the reference
// silicon's mode list; mode 1 is the jump opcode and carries no display
// parameters.
var Modes = [16]ModeKind{
	0x0: {ScanLines: 0},
	0x1: {},
	0x2: {ScanLines: 8, Width: arbiter.WidthWide, DMAShift: 3, CharMode: true, Fiddle: true},
	0x3: {ScanLines: 10, Width: arbiter.WidthWide, DMAShift: 3, CharMode: true, Fiddle: true},
	0x4: {ScanLines: 8, Width: arbiter.WidthWide, DMAShift: 3, CharMode: true},
	0x5: {ScanLines: 16, Width: arbiter.WidthWide, DMAShift: 3, CharMode: true},
	0x6: {ScanLines: 8, Width: arbiter.WidthNormal, DMAShift: 2, CharMode: true},
	0x7: {ScanLines: 16, Width: arbiter.WidthNormal, DMAShift: 2, CharMode: true},
	0x8: {ScanLines: 8, Width: arbiter.WidthNarrow, DMAShift: 1},
	0x9: {ScanLines: 4, Width: arbiter.WidthNarrow, DMAShift: 1},
	0xA: {ScanLines: 4, Width: arbiter.WidthNormal, DMAShift: 2},
	0xB: {ScanLines: 2, Width: arbiter.WidthNormal, DMAShift: 2},
	0xC: {ScanLines: 1, Width: arbiter.WidthNormal, DMAShift: 2},
	0xD: {ScanLines: 2, Width: arbiter.WidthWide, DMAShift: 3},
	0xE: {ScanLines: 1, Width: arbiter.WidthWide, DMAShift: 3},
	0xF: {ScanLines: 1, Width: arbiter.WidthWide, DMAShift: 3, Fiddle: true},
}

// CharacterGenerator holds the shadow state the character-mode generators
// read: where to fetch character bitmaps from, the blank and invert masks,
// and whether rows are drawn upside down.
type CharacterGenerator struct {
	Base       uint16
	UpsideDown bool
	InvertMask uint8
	BlankMask  uint8
}

// RowAddress returns the address of the character row for code at the
// given sub-line (0-based within the mode line), honouring UpsideDown.
func (c *CharacterGenerator) RowAddress(code uint8, subline, rowsPerChar int) uint16 {
	row := subline
	if c.UpsideDown {
		row = rowsPerChar - 1 - subline
	}
	return c.Base + uint16(code)*uint16(rowsPerChar) + uint16(row)
}

// Mask applies the invert mask to a fetched character row byte: the row is
// inverted when codePoint shares a bit with InvertMask. The second result
// reports whether codePoint shares a bit with BlankMask; the row itself is
// not cleared here, the caller renders a blanked character as background.
func (c *CharacterGenerator) Mask(codePoint uint8, row uint8) (uint8, bool) {
	blanked := codePoint&c.BlankMask != 0
	out := row
	if codePoint&c.InvertMask != 0 {
		out ^= 0xFF
	}
	return out, blanked
}
