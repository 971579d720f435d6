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

// Package clocks defines the fixed timing constants of the dot clock shared
// by the CPU, the display-list controller and the colour merger.
//
// A colour clock is one cycle of the pixel clock. There are two
// half-colour-clocks per colour clock, 114 colour clocks per scanline, and
// one CPU cycle per colour clock (the CPU and the DLC share the same dot
// clock and steal cycles from one another rather than running at different
// rates).
package clocks

const (
	// CyclesPerLine is the number of colour clocks (and CPU cycles) in one
	// scanline, NTSC and PAL alike.
	CyclesPerLine = 114

	// HalfColourClocksPerCycle is the finest horizontal granularity the CMM
	// produces, two per colour clock.
	HalfColourClocksPerCycle = 2

	// HalfColourClocksPerLine is the total half-colour-clock width of a
	// scanline.
	HalfColourClocksPerLine = CyclesPerLine * HalfColourClocksPerCycle
)

// Lines-per-frame and visible-region constants, shared by dlc and cmm.
const (
	NTSCLines = 262
	PALLines  = 312

	DisplayStart = 8   // first visible scanline
	VBIStart     = 248 // first scanline of the vertical blank region
)

// Standard identifies which broadcast timing a Machine runs at.
type Standard int

const (
	NTSC Standard = iota
	PAL
)

// TotalLines returns the frame height for this standard.
func (s Standard) TotalLines() int {
	if s == PAL {
		return PALLines
	}
	return NTSCLines
}

// String implements fmt.Stringer.
func (s Standard) String() string {
	if s == PAL {
		return "PAL"
	}
	return "NTSC"
}
