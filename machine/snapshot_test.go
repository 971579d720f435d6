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

package machine

import (
	"testing"

	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/memory/registers"
)

// TestSnapshotRoundTrip saves, scrambles the machine with a cold start,
// loads, and confirms every named field comes back exactly as it was
// before the cold start wiped it.
func TestSnapshotRoundTrip(t *testing.T) {
	m, view, _, _ := newTestMachine(t)
	writeBlankDisplayList(view, 0x5000)
	m.dlc.WriteRegister(registers.DLCDListLo, 0x00)
	m.dlc.WriteRegister(registers.DLCDListHi, 0x50)
	m.dlc.WriteRegister(registers.DLCDMACtrl, 0x21)
	m.dlc.WriteRegister(registers.DLCCharCtrl, 0x02)
	m.dlc.WriteRegister(registers.DLCCharBase, 0x50)
	m.dlc.WriteRegister(registers.DLCPMBase, 0x40)
	m.dlc.WriteRegister(registers.DLCHScroll, 0x03)
	m.dlc.WriteRegister(registers.DLCVScroll, 0x05)
	m.dlc.WriteRegister(registers.DLCNMIEnable, 0xc0)

	m.cmm.WriteRegister(registers.CMMPlayer0Color, 0x1a)
	m.cmm.WriteRegister(registers.CMMPlayer0Graphics, 0xff)
	m.cmm.WriteRegister(registers.CMMPlayer0Size, 0x02)
	m.cmm.WriteRegister(registers.CMMPlayer0HPos, 0x30)
	m.cmm.WriteRegister(registers.CMMMissile0HPos, 0x20)
	m.cmm.WriteRegister(registers.CMMPlayfield0Color, 0x2c)
	m.cmm.WriteRegister(registers.CMMBackgroundColor, 0x00)
	m.cmm.WriteRegister(registers.CMMMissileGraphics, 0x1b)
	m.cmm.WriteRegister(registers.CMMMissileSize, 0x93)
	m.cmm.WriteRegister(registers.CMMPriorityControl, 0x11)
	m.cmm.WriteRegister(registers.CMMGraphicsControl, 0x03)
	m.cmm.WriteRegister(registers.CMMVerticalDelay, 0x0f)
	m.ins.ChipGeneration = instance.GTIA2

	before := m.Save()

	m.ColdStart()
	m.Load(before)

	after := m.Save()

	for _, name := range before.Names() {
		if got, want := after.GetUint16(name), before.GetUint16(name); got != want {
			t.Errorf("field %q after round trip = %#x, want %#x", name, got, want)
		}
	}
	if m.ins.ChipGeneration != instance.GTIA2 {
		t.Fatalf("ChipGeneration after Load = %v, want %v", m.ins.ChipGeneration, instance.GTIA2)
	}
}

// TestSnapshotPreservesMissilePacking covers the bit-exact repack formulas
// Save uses for the combined missile graphics and size registers.
func TestSnapshotPreservesMissilePacking(t *testing.T) {
	m, _, _, _ := newTestMachine(t)
	m.cmm.WriteRegister(registers.CMMMissileGraphics, 0x1b)
	m.cmm.WriteRegister(registers.CMMMissileSize, 0x93)

	sn := m.Save()

	if got := sn.GetUint8("MissileGraphics"); got != 0x1b {
		t.Fatalf("MissileGraphics = %#02x, want 0x1b", got)
	}
	if got := sn.GetUint8("MissileSizes"); got != 0x93 {
		t.Fatalf("MissileSizes = %#02x, want 0x93", got)
	}
}
