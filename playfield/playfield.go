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

// Package playfield implements the sixteen display-list mode-line
// generators: each consumes a scanline's worth of DMA-fetched bytes and
// produces one pre-computed colour index per half-colour-clock.
package playfield

import (
	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/dlc"
)

// FillInOffset is the left padding, in half-colour-clocks, reserved ahead
// of playfield data in the line buffer to accommodate horizontal scroll
// (spec.md §3 "Fill-in offset").
const FillInOffset = 32

// VisibleWidth is the maximum playfield width, in half-colour-clocks.
const VisibleWidth = 352

// LineWidth is the full generator output width, fill-in included.
const LineWidth = FillInOffset + VisibleWidth

// Line is a generated scanline's worth of pre-computed colour indices, one
// per half-colour-clock, in the playfield decoder's own line-buffer
// coordinate space (distinct from the CMM's colour-clock domain).
type Line [LineWidth]colortable.Slot

// Generator produces one mode line's worth of pre-computed colour indices
// from the DLC's scanline handoff. mem is used by character modes to fetch
// the character generator's bitmap rows.
type Generator func(out *Line, ready *dlc.ScanlineReady, mem dlc.Bus)

// Generators is the sixteen mode-line generator functions, indexed by
// opcode lower nibble, mirroring dlc.Modes.
var Generators = [16]Generator{
	0x0: genBlank,
	0x1: genBlank, // never invoked: opcode 1 is the jump, not a mode line
	0x2: genCharFiddled,
	0x3: genCharFiddled,
	0x4: genChar,
	0x5: genChar,
	0x6: genChar,
	0x7: genChar,
	0x8: genBitmap,
	0x9: genBitmap,
	0xA: genBitmap,
	0xB: genBitmap,
	0xC: genBitmap,
	0xD: genBitmap,
	0xE: genBitmap,
	0xF: genBitmapFiddled,
}

// Generate dispatches to the mode line's generator and fills out in place.
func Generate(out *Line, ready *dlc.ScanlineReady, mem dlc.Bus) {
	for i := range out {
		out[i] = colortable.Background
	}
	if ready.Blank {
		return
	}
	Generators[ready.Mode](out, ready, mem)
}

// genBlank emits pure background for the entire line (spec.md §4.3 "Mode 0
// emits pure background for all half-colour-clocks").
func genBlank(out *Line, ready *dlc.ScanlineReady, mem dlc.Bus) {
	for i := range out {
		out[i] = colortable.Background
	}
}

// charPixels maps a character mode's fetched, masked byte into eight
// playfield slots: foreground where the bit is set, background where
// clear. Blanked characters (matched by the blank mask) emit background
// throughout, per spec.md §4.3.
func charPixels(code, row uint8, blanked bool, fg, bg colortable.Slot, dst []colortable.Slot) {
	if blanked {
		for i := range dst {
			dst[i] = bg
		}
		return
	}
	for bit := 0; bit < 8 && bit < len(dst); bit++ {
		if row&(0x80>>uint(bit)) != 0 {
			dst[bit] = fg
		} else {
			dst[bit] = bg
		}
	}
}

// genChar renders an unfiddled character mode line (modes 4-7): each
// scanbuffer byte selects a character-generator row, expanded to eight
// half-colour-clocks of foreground/background.
func genChar(out *Line, ready *dlc.ScanlineReady, mem dlc.Bus) {
	cg := ready.CharGen
	if cg == nil {
		return
	}
	pos := FillInOffset
	rowsPerChar := 8
	for _, code := range ready.Scanbuffer {
		if pos+8 > len(out) {
			break
		}
		addr := cg.RowAddress(code&0x7F, ready.DisplayRow%rowsPerChar, rowsPerChar)
		row, _ := mem.Read(addr)
		masked, blanked := cg.Mask(code, row)
		charPixels(code, masked, blanked, colortable.Playfield1, colortable.Background, out[pos:pos+8])
		pos += 8
	}
}

// genCharFiddled renders modes 2 and 3: identical fetch pattern to genChar,
// but the foreground slot is the fiddled PF1/PF2 merge (spec.md §4.3: "For
// modes 2 and 3 in fiddled mode, the hue of ColPF2 merged with the value of
// ColPF1 is used").
func genCharFiddled(out *Line, ready *dlc.ScanlineReady, mem dlc.Bus) {
	cg := ready.CharGen
	if cg == nil {
		return
	}
	pos := FillInOffset
	rowsPerChar := 8
	for _, code := range ready.Scanbuffer {
		if pos+8 > len(out) {
			break
		}
		addr := cg.RowAddress(code&0x7F, ready.DisplayRow%rowsPerChar, rowsPerChar)
		row, _ := mem.Read(addr)
		masked, blanked := cg.Mask(code, row)
		charPixels(code, masked, blanked, colortable.Playfield1Fiddled, colortable.Background, out[pos:pos+8])
		pos += 8
	}
}

// genBitmap renders the non-fiddled bitmap modes (8-E): every one of them
// consumes scanbuffer bytes two bits at a time, most significant pair
// first, one half-colour-clock per pair, each pair selecting background or
// playfield colour 0-2 directly (spec.md §4.3 "Modes A-F (bitmap) use the
// playfield colours directly"). The mode number does not change this
// unpacking or the pixel width.
func genBitmap(out *Line, ready *dlc.ScanlineReady, mem dlc.Bus) {
	pos := FillInOffset
	pfSlots := [4]colortable.Slot{
		colortable.Background, colortable.Playfield0, colortable.Playfield1, colortable.Playfield2,
	}
	for _, b := range ready.Scanbuffer {
		for shift := 6; shift >= 0 && pos < len(out); shift -= 2 {
			idx := (b >> uint(shift)) & 0x03
			out[pos] = pfSlots[idx]
			pos++
		}
	}
}

// genBitmapFiddled renders mode F, the only hi-res bitmap mode: each bit
// selects background or Playfield1Fiddled, at double the half-colour-clock
// density of genBitmap's two-bit-per-pixel modes.
func genBitmapFiddled(out *Line, ready *dlc.ScanlineReady, mem dlc.Bus) {
	pos := FillInOffset
	for _, b := range ready.Scanbuffer {
		for bit := 7; bit >= 0 && pos < len(out); bit-- {
			if b&(1<<uint(bit)) != 0 {
				out[pos] = colortable.Playfield1Fiddled
			} else {
				out[pos] = colortable.Background
			}
			pos++
		}
	}
}
