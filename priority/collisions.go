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

package priority

import (
	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/pmengine"
)

// UpdateCollisions latches one pixel's collision bits into every object
// present there: each object accumulates the other objects it was seen
// overlapping (self-collision is masked out when the registers are read,
// not here) and the playfield colours it was seen over, as filtered by
// collisionMask (spec.md §4.5; collisionMask differs between ordinary and
// colour-fiddled display variants, see CollisionMaskUnfiddled/Fiddled).
func UpdateCollisions(pfPixel colortable.Slot, pmPixel uint8, collisionMask [16]uint8, players, missiles [4]*pmengine.Object) {
	pf := collisionMask[pfPixel]
	for i := 0; i < 4; i++ {
		if pmPixel&players[i].DisplayMask != 0 {
			players[i].CollisionPlayer |= pmPixel
			players[i].CollisionPlayfield |= pf
		}
		if pmPixel&missiles[i].DisplayMask != 0 {
			missiles[i].CollisionPlayer |= pmPixel
			missiles[i].CollisionPlayfield |= pf
		}
	}
}
