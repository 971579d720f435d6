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
	"fmt"

	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/memory/registers"
	"github.com/thor8bit/chipcore/pmengine"
	"github.com/thor8bit/chipcore/snapshot"
)

// Save writes every field a full snapshot of the CMM needs into sn: every
// colour register, P/M position/size/graphics, priority control,
// graphics control, vertical delay, and the active chip-generation enum.
// The collision registers are not part of this set, matching the reference
// implementation's own GTIA::State ("We don't store the collision
// registers. This is a bit incorrect, but so what.").
func (c *CMM) Save(sn *snapshot.Snapshot) {
	for i := range c.engine.Players {
		p := c.engine.Players[i]
		sn.SetUint8(fmt.Sprintf("Player%dColor", i), c.ct.Get(colortable.Player0+colortable.Slot(i)))
		sn.SetUint8(fmt.Sprintf("Player%dGraphics", i), p.Graphics)
		sn.SetUint8(fmt.Sprintf("Player%dSize", i), p.Size)
		sn.SetUint8(fmt.Sprintf("Player%dHPos", i), p.HPos)
	}
	for i := range c.engine.Missiles {
		sn.SetUint8(fmt.Sprintf("Missile%dHPos", i), c.engine.Missiles[i].HPos)
	}
	for i := 0; i < 4; i++ {
		sn.SetUint8(fmt.Sprintf("Playfield%dColor", i), c.ct.Get(colortable.Playfield0+colortable.Slot(i)))
	}
	sn.SetUint8("PlayfieldBackgroundColor", c.ct.Get(colortable.Background))
	sn.SetUint8("MissileGraphics", packMissileGraphics(c.engine.Missiles))
	sn.SetUint8("MissileSizes", packMissileSizes(c.engine.Missiles))
	sn.SetUint8("Prior", c.priorCtrl)
	sn.SetUint8("GraCtl", c.graCtl)
	sn.SetUint8("VDelay", c.engine.VDelay)
	sn.SetUint8("ConsoleOutput", c.consoleOut)
	sn.SetUint8("ChipGeneration", uint8(c.ins.ChipGeneration))
}

// Load restores the fields Save wrote, replaying each one through
// WriteRegister so the derived state a register write normally triggers
// (merged player colours, the fiddled playfield slot, the priority tables,
// decoded positions and sizes) is rebuilt exactly rather than duplicated
// here, the same strategy the reference implementation's own State method
// uses.
func (c *CMM) Load(sn *snapshot.Snapshot) {
	for i := 0; i < 4; i++ {
		o := uint8(i)
		c.WriteRegister(registers.CMMPlayer0Color+o, sn.GetUint8(fmt.Sprintf("Player%dColor", i)))
		c.WriteRegister(registers.CMMPlayer0Graphics+o, sn.GetUint8(fmt.Sprintf("Player%dGraphics", i)))
		c.WriteRegister(registers.CMMPlayer0Size+o, sn.GetUint8(fmt.Sprintf("Player%dSize", i)))
		c.WriteRegister(registers.CMMPlayer0HPos+o, sn.GetUint8(fmt.Sprintf("Player%dHPos", i)))
		c.WriteRegister(registers.CMMMissile0HPos+o, sn.GetUint8(fmt.Sprintf("Missile%dHPos", i)))
		c.WriteRegister(registers.CMMPlayfield0Color+o, sn.GetUint8(fmt.Sprintf("Playfield%dColor", i)))
	}
	c.WriteRegister(registers.CMMBackgroundColor, sn.GetUint8("PlayfieldBackgroundColor"))
	c.WriteRegister(registers.CMMMissileGraphics, sn.GetUint8("MissileGraphics"))
	c.WriteRegister(registers.CMMMissileSize, sn.GetUint8("MissileSizes"))
	c.WriteRegister(registers.CMMPriorityControl, sn.GetUint8("Prior"))
	c.WriteRegister(registers.CMMGraphicsControl, sn.GetUint8("GraCtl"))
	c.WriteRegister(registers.CMMVerticalDelay, sn.GetUint8("VDelay"))
	c.WriteRegister(registers.CMMConsoleOutput, sn.GetUint8("ConsoleOutput"))

	c.ins.ChipGeneration = instance.ChipGeneration(sn.GetUint8("ChipGeneration"))
	c1, c2 := artifactColors(c.ins.ChipGeneration)
	c.ct.SetArtifactColors(c1, c2)
}

// packMissileGraphics folds the four missiles' shifted-byte graphics
// registers back into one combined register value, the inverse of
// WriteRegister's CMMMissileGraphics unpack and identical to the reference
// chip's own GTIA::State formula for the same field.
func packMissileGraphics(m [4]*pmengine.Object) uint8 {
	return m[0].Graphics>>6 | m[1].Graphics>>4 | m[2].Graphics>>2 | m[3].Graphics
}

// packMissileSizes folds the four missiles' decoded sizes back into one
// combined register value, the inverse of WriteRegister's CMMMissileSize
// unpack and identical to the reference chip's own GTIA::State formula.
func packMissileSizes(m [4]*pmengine.Object) uint8 {
	return m[0].Size | m[1].Size<<2 | m[2].Size<<4 | m[3].Size<<6
}
