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

import (
	"github.com/thor8bit/chipcore/memory/registers"
	"github.com/thor8bit/chipcore/snapshot"
)

// Save writes every field a full snapshot of the DLC needs into sn: the
// display-list program counter, DMA control, character control/base, PM
// base, horizontal/vertical scroll and the NMI-enable mask. The collision
// and vertical-counter state are not part of this set, matching
// GTIA::State, which does not snapshot collision registers either.
func (d *DLC) Save(sn *snapshot.Snapshot) {
	sn.SetUint16("ProgramCounter", d.pc)
	sn.SetUint8("DMAControl", d.dmaCtrl)
	sn.SetUint8("CharControl", d.charCtrl)
	sn.SetUint16("CharBase", d.chBase)
	sn.SetUint8("PMBase", d.pmBase)
	sn.SetUint8("HScroll", d.hscroll)
	sn.SetUint8("VScroll", d.vscroll)
	sn.SetUint8("NMIEnable", d.nmiEnable)
}

// Load restores the fields Save wrote. Derived state (the character
// generator's blank/invert masks, the 20/40-column base addresses) is
// re-established by replaying the restored bytes through WriteRegister
// rather than duplicated here, the same strategy the reference
// implementation's own State method uses (DefineLong followed by calling
// the matching Write handler).
func (d *DLC) Load(sn *snapshot.Snapshot) {
	d.pc = sn.GetUint16("ProgramCounter")
	d.WriteRegister(registers.DLCDMACtrl, sn.GetUint8("DMAControl"))
	d.WriteRegister(registers.DLCCharCtrl, sn.GetUint8("CharControl"))
	chBase := sn.GetUint16("CharBase")
	d.WriteRegister(registers.DLCCharBase, uint8(chBase>>8))
	d.pmBase = sn.GetUint8("PMBase")
	d.WriteRegister(registers.DLCHScroll, sn.GetUint8("HScroll"))
	d.WriteRegister(registers.DLCVScroll, sn.GetUint8("VScroll"))
	d.nmiEnable = sn.GetUint8("NMIEnable")
}
