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

// Scanbuffer holds the 64 bytes of DMA-fetched data for the active mode
// line (spec.md §3).
type Scanbuffer [64]uint8

// ScanlineReady is the explicit, by-value handoff the DLC gives the CMM at
// the end of every line, replacing the mutual DLC/CMM pointers of the
// reference implementation (spec.md §9 design note).
type ScanlineReady struct {
	Mode       uint8
	Fiddled    bool
	Blank      bool
	HScroll    uint8
	Scanbuffer Scanbuffer
	CharGen    *CharacterGenerator
	DisplayRow int
}
