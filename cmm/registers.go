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
	"github.com/thor8bit/chipcore/display"
	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/logger"
	"github.com/thor8bit/chipcore/memory/registers"
)

// ReadRegister implements bus.RegisterBus for the CMM's chip page. CMM
// register writes are not threaded through a cycle position: mid-scanline
// retrigger is exercised directly on pmengine.Object by a caller that has
// the half-colour-clock position to hand, not through this bus.
func (c *CMM) ReadRegister(offset uint8) uint8 {
	o := offset % registers.CMMPageSize

	switch {
	case o <= registers.CMMMissilePFCollision3:
		m := c.engine.Missiles[o-registers.CMMMissilePFCollision0]
		return m.CollisionPlayfield & m.PlayfieldColMask

	case o <= registers.CMMPlayerPFCollision3:
		p := c.engine.Players[o-registers.CMMPlayerPFCollision0]
		return p.CollisionPlayfield & p.PlayfieldColMask

	case o <= registers.CMMMissilePLCollision3:
		m := c.engine.Missiles[o-registers.CMMMissilePLCollision0]
		return m.CollisionPlayer & m.PlayerColMask &^ m.DisplayMask

	case o == registers.CMMPlayerPLCollision:
		var v uint8
		for i, p := range c.engine.Players {
			if p.CollisionPlayer&p.PlayerColMask&^p.DisplayMask != 0 {
				v |= 1 << uint(i)
			}
		}
		return v

	case o <= registers.CMMTrigger3:
		idx := int(o - registers.CMMTrigger0)
		if c.input.Trigger(idx) {
			return 0x00 // GTIA trigger logic is negative: pressed pulls low.
		}
		return 0x01

	case o == registers.CMMConsoleSwitches:
		return c.input.ConsoleSwitches()

	default:
		// Unrouted offsets pull the topmost nibble low on GTIA but not CTIA.
		if c.ins.ChipGeneration == instance.CTIA {
			return 0xff
		}
		return 0x0f
	}
}

// WriteRegister implements bus.RegisterBus for the CMM's chip page.
func (c *CMM) WriteRegister(offset uint8, value uint8) {
	o := offset % registers.CMMPageSize

	switch {
	case o <= registers.CMMPlayer3HPos:
		c.engine.Players[o-registers.CMMPlayer0HPos].RepositionObject(value)

	case o <= registers.CMMMissile3HPos:
		c.engine.Missiles[o-registers.CMMMissile0HPos].RepositionObject(value)

	case o <= registers.CMMPlayer3Size:
		c.engine.Players[o-registers.CMMPlayer0Size].ResizeObject(value)

	case o == registers.CMMMissileSize:
		for i, m := range c.engine.Missiles {
			m.ResizeObject(value >> uint(i*2))
		}

	case o <= registers.CMMPlayer3Graphics:
		c.engine.Players[o-registers.CMMPlayer0Graphics].ReshapeObject(value)

	case o == registers.CMMMissileGraphics:
		shift := uint(6)
		for _, m := range c.engine.Missiles {
			m.ReshapeObject((value << shift) & 0xc0)
			shift -= 2
		}

	case o <= registers.CMMPlayer3Color:
		c.ct.SetPlayerColor(int(o-registers.CMMPlayer0Color), value)

	case o <= registers.CMMPlayfield3Color:
		c.ct.SetPlayfieldColor(int(o-registers.CMMPlayfield0Color), value&0xfe)

	case o == registers.CMMBackgroundColor:
		c.ct.SetBackground(value & 0xfe)

	case o == registers.CMMPriorityControl:
		c.writePriorityControl(value)

	case o == registers.CMMVerticalDelay:
		c.engine.VDelay = value

	case o == registers.CMMGraphicsControl:
		c.graCtl = value

	case o == registers.CMMHitClear:
		c.clearCollisions()

	case o == registers.CMMConsoleOutput:
		c.consoleOut = value

	default:
		logger.Log("cmm", "write to unknown offset %#02x", offset)
	}
}

// writePriorityControl rebuilds the priority tables and folds the value
// into this line's accumulated initial priority, the state display.Select
// consults to detect a processed mode dropped mid-line (spec.md §4.6).
func (c *CMM) writePriorityControl(value uint8) {
	if value == c.priorCtrl {
		return
	}
	c.priorCtrl = value
	c.pt.Rebuild(value)
	c.initialPrior = display.AccumulateInitialPrior(c.initialPrior, value)
}

// clearCollisions implements the hit-clear strobe (spec.md §6 offset
// 0x1E): every object's collision registers are zeroed.
func (c *CMM) clearCollisions() {
	for _, p := range c.engine.Players {
		p.CollisionPlayer = 0
		p.CollisionPlayfield = 0
	}
	for _, m := range c.engine.Missiles {
		m.CollisionPlayer = 0
		m.CollisionPlayfield = 0
	}
}
