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

// Package postprocess implements the true-colour output chain: an
// optional blend of each finished scanline of palette indices with the
// previous scanline of the same frame, the same row of the previous
// frame, or both, bypassed entirely unless the sink accepts packed RGB.
package postprocess

// PackedRGB is one packed, display-ready pixel (alpha/red/green/blue
// interleaved as the reference renderer packs them).
type PackedRGB uint32

// Chain selects which blend, if any, a Processor applies.
type Chain int

const (
	// None passes palette indices through the colour map unmodified.
	None Chain = iota
	// LineBlur averages each pixel with the same column of the previous
	// scanline of the same frame, unless their intensity nibbles differ.
	LineBlur
	// FrameBlur averages each pixel with the same pixel of the previous
	// frame, unconditionally.
	FrameBlur
	// Both combines LineBlur's bypass test with a three-way mix that
	// gives the previous-frame pixel double weight.
	Both
)

// mix averages two packed colours at reduced precision, matching the
// reference renderer's "quick'n'dirty" ColorEntry::XMixColor: each channel
// is masked to its even value first so the sum never overflows its byte.
func mix(a, b PackedRGB) PackedRGB {
	return ((a & 0xfefefefe) + (b & 0xfefefefe)) >> 1
}

// mixWeighted averages a with o1 first, then folds in o2 at double
// weight, matching ColorEntry::XMixColor's three-argument overload.
func mixWeighted(a, o1, o2 PackedRGB) PackedRGB {
	return (((mix(a, o1)) & 0xfefefefe) + (o2 & 0xfefefefe)) >> 1
}

// Processor applies a Chain across successive scanlines of a frame,
// carrying whatever line- and frame-history state that chain needs.
type Processor struct {
	chain   Chain
	palette [256]PackedRGB
	width   int

	previousLine  []uint8 // last scanline pushed, any frame; reset at VBI
	previousFrame []uint8 // full previous frame, row-major
	rowOffset     int
}

// NewProcessor returns a processor for the given chain, colour map and
// frame geometry. palette maps a raw colour-table byte (spec.md §3) to its
// packed RGB equivalent.
func NewProcessor(chain Chain, palette [256]PackedRGB, width, height int) *Processor {
	p := &Processor{
		chain:         chain,
		palette:       palette,
		width:         width,
		previousLine:  make([]uint8, width),
		previousFrame: make([]uint8, width*height),
	}
	return p
}

// VBI resets the per-frame row cursor at the start of vertical blank,
// matching PALColorBlurer/FlickerFixer's VBI-triggered reset of their
// internal state (spec.md §4.7 runs once per frame, not once per line).
func (p *Processor) VBI() {
	p.rowOffset = 0
	for i := range p.previousLine {
		p.previousLine[i] = 0
	}
}

// Reset clears all carried history, as on a cold or warm start.
func (p *Processor) Reset() {
	p.rowOffset = 0
	for i := range p.previousLine {
		p.previousLine[i] = 0
	}
	for i := range p.previousFrame {
		p.previousFrame[i] = 0
	}
}

// Apply pushes one finished scanline of palette indices through the
// configured chain and returns its packed-RGB equivalent, advancing the
// processor's line/frame history. The caller advances the row cursor
// implicitly: Apply must be called once per visible scanline, in order,
// and VBI between frames.
func (p *Processor) Apply(cur []uint8) []PackedRGB {
	out := make([]PackedRGB, len(cur))
	prevFrameRow := p.previousFrame[p.rowOffset : p.rowOffset+len(cur)]

	switch p.chain {
	case None:
		for i, b := range cur {
			out[i] = p.palette[b]
		}

	case LineBlur:
		for i, b := range cur {
			prev := p.previousLine[i]
			if (b^prev)&0x0f != 0 {
				out[i] = p.palette[b]
			} else {
				out[i] = mix(p.palette[b], p.palette[prev])
			}
		}
		copy(p.previousLine, cur)

	case FrameBlur:
		for i, b := range cur {
			out[i] = mix(p.palette[b], p.palette[prevFrameRow[i]])
		}
		copy(prevFrameRow, cur)
		p.rowOffset += p.width

	case Both:
		for i, b := range cur {
			prevLine := p.previousLine[i]
			if (b^prevLine)&0x0f != 0 {
				out[i] = mix(p.palette[b], p.palette[prevFrameRow[i]])
			} else {
				out[i] = mixWeighted(p.palette[b], p.palette[prevLine], p.palette[prevFrameRow[i]])
			}
		}
		copy(prevFrameRow, cur)
		copy(p.previousLine, cur)
		p.rowOffset += p.width
	}

	return out
}
