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

package cmm

import (
	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/display"
	"github.com/thor8bit/chipcore/dlc"
	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/pmengine"
	"github.com/thor8bit/chipcore/playfield"
)

// TriggerScanline consumes one line's handoff from the display-list
// controller and returns its final colour bytes, one per visible
// half-colour-clock (spec.md §4.3, §4.6). By the time this runs every
// register write for the line has already landed, since CMM register
// writes carry no cycle position; the variant in force for the whole line
// is therefore picked once rather than re-picked as rendering crosses each
// write.
//
// Player/missile graphics are reloaded only by explicit register writes
// here: the reference chip's DMA-driven reload gated by the vertical-delay
// bit is not modelled, since the display-list controller in this core
// fetches playfield data only, not player/missile data (declared
// simplification, see DESIGN.md).
func (c *CMM) TriggerScanline(ready dlc.ScanlineReady, mem dlc.Bus) []uint8 {
	var line playfield.Line
	playfield.Generate(&line, &ready, mem)

	c.engine.ClearOverlay()
	c.engine.Render()

	hasProcessedModes := c.ins.ChipGeneration != instance.CTIA
	artefacting := ready.Fiddled && c.ins.ColPF1FiddledArtifacts
	variant := display.Select(c.priorCtrl, ready.Fiddled, artefacting, hasProcessedModes, c.initialPrior)

	out := make([]uint8, playfield.VisibleWidth)

	for group := 0; group+4 <= playfield.VisibleWidth; group += 4 {
		var pf [4]colortable.Slot
		var player [4]uint8
		for i := 0; i < 4; i++ {
			srcPos := playfield.FillInOffset + group + i - int(ready.HScroll)
			if srcPos < 0 || srcPos >= playfield.LineWidth {
				srcPos = playfield.FillInOffset
			}
			pf[i] = line[srcPos]

			overlayPos := pmengine.PlayerLeftBorder + group + i
			if overlayPos >= 0 && overlayPos < len(c.engine.Overlay) {
				player[i] = c.engine.Overlay[overlayPos]
			}
		}

		display.PostProcessClock(variant, c.pt, c.ct, c.engine.Players, c.engine.Missiles,
			pf, player, out[group:group+4])
	}

	return out
}
