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

package playfield

import (
	"testing"

	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/dlc"
)

type zeroMem struct{}

func (zeroMem) Read(address uint16) (uint8, error) { return 0, nil }

func TestBlankLineIsAllBackground(t *testing.T) {
	var out Line
	ready := &dlc.ScanlineReady{Mode: 0, Blank: true}
	Generate(&out, ready, zeroMem{})
	for i, slot := range out {
		if slot != colortable.Background {
			t.Fatalf("half-colour-clock %d = %v, want Background", i, slot)
		}
	}
}

func TestBitmapModeUsesPlayfieldColoursDirectly(t *testing.T) {
	var out Line
	ready := &dlc.ScanlineReady{Mode: 0xA}
	ready.Scanbuffer[0] = 0b01_10_11_00
	Generate(&out, ready, zeroMem{})

	want := []colortable.Slot{
		colortable.Playfield0,
		colortable.Playfield1,
		colortable.Playfield2,
		colortable.Background,
	}
	for i, w := range want {
		if out[FillInOffset+i] != w {
			t.Errorf("pixel %d = %v, want %v", i, out[FillInOffset+i], w)
		}
	}
}

func TestFiddledBitmapModeIsOneBitPerPixel(t *testing.T) {
	var out Line
	ready := &dlc.ScanlineReady{Mode: 0xF}
	ready.Scanbuffer[0] = 0b10100000
	Generate(&out, ready, zeroMem{})

	want := []colortable.Slot{
		colortable.Playfield1Fiddled, colortable.Background,
		colortable.Playfield1Fiddled, colortable.Background,
	}
	for i, w := range want {
		if out[FillInOffset+i] != w {
			t.Errorf("pixel %d = %v, want %v", i, out[FillInOffset+i], w)
		}
	}
}

func TestCharModeBlankMaskProducesBackground(t *testing.T) {
	var out Line
	cg := &dlc.CharacterGenerator{BlankMask: 0x60}
	ready := &dlc.ScanlineReady{Mode: 0x4, CharGen: cg}
	ready.Scanbuffer[0] = 0x60 // matches the blank mask

	Generate(&out, ready, zeroMem{})
	for i := 0; i < 8; i++ {
		if out[FillInOffset+i] != colortable.Background {
			t.Errorf("blanked char pixel %d = %v, want Background", i, out[FillInOffset+i])
		}
	}
}
