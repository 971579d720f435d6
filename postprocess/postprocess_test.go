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

package postprocess

import "testing"

func identityPalette() [256]PackedRGB {
	var p [256]PackedRGB
	for i := range p {
		// A distinct RGB value for every index (the index shifted up one
		// byte), so each blend result can be told apart.
		p[i] = PackedRGB(i) << 8
	}
	return p
}

func TestNoneChainPassesThrough(t *testing.T) {
	p := NewProcessor(None, identityPalette(), 4, 2)
	out := p.Apply([]uint8{1, 2, 3, 4})
	want := []PackedRGB{1 << 8, 2 << 8, 3 << 8, 4 << 8}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %#x, want %#x", i, out[i], want[i])
		}
	}
}

// TestLineBlurBypassedOnIntensityMismatch covers spec.md §4.7: line-blur
// is bypassed when adjacent lines have different intensity nibbles.
func TestLineBlurBypassedOnIntensityMismatch(t *testing.T) {
	pal := identityPalette()
	p := NewProcessor(LineBlur, pal, 2, 1)

	p.Apply([]uint8{0x05, 0x05}) // establishes previousLine = 0x05,0x05

	// 0x15 and 0x05 share the low nibble (intensity) 0x5: must blur.
	out := p.Apply([]uint8{0x15, 0x15})
	wantBlurred := mix(pal[0x15], pal[0x05])
	if out[0] != wantBlurred {
		t.Fatalf("same-intensity pixel = %#x, want blurred %#x", out[0], wantBlurred)
	}

	p2 := NewProcessor(LineBlur, pal, 2, 1)
	p2.Apply([]uint8{0x00, 0x00})
	// 0x21 differs in intensity nibble from 0x00: must bypass the blur.
	out2 := p2.Apply([]uint8{0x21, 0x21})
	if out2[0] != pal[0x21] {
		t.Fatalf("differing-intensity pixel = %#x, want unblurred %#x", out2[0], pal[0x21])
	}
}

// TestFrameBlurAdvancesRowAndResetsOnVBI covers the frame-blur chain's row
// cursor: it advances every Apply call and resets to the top of the
// previous-frame buffer at VBI.
func TestFrameBlurAdvancesRowAndResetsOnVBI(t *testing.T) {
	pal := identityPalette()
	p := NewProcessor(FrameBlur, pal, 2, 2)

	p.Apply([]uint8{0x01, 0x01}) // row 0 of "previous frame" becomes 0x01,0x01
	out := p.Apply([]uint8{0x02, 0x02})
	want := mix(pal[0x02], pal[0x00]) // row 1 of previous frame still zero
	if out[0] != want {
		t.Fatalf("row 1 out = %#x, want %#x", out[0], want)
	}

	p.VBI()
	out2 := p.Apply([]uint8{0x03, 0x03})
	want2 := mix(pal[0x03], pal[0x01]) // row cursor reset: blends against row 0 again
	if out2[0] != want2 {
		t.Fatalf("post-VBI out = %#x, want %#x", out2[0], want2)
	}
}
