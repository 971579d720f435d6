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
	"testing"

	"github.com/thor8bit/chipcore/arbiter"
	"github.com/thor8bit/chipcore/clocks"
	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/memory/addrspace"
	"github.com/thor8bit/chipcore/memory/registers"
)

// testMem satisfies Bus, backed by an addrspace view.
type testMem struct {
	v *addrspace.View
}

func (m testMem) Read(address uint16) (uint8, error) { return m.v.Read(address) }

func newTestDLC(t *testing.T) (*DLC, *addrspace.View) {
	t.Helper()
	space := addrspace.NewSpace()
	view := addrspace.NewDLCView(space)
	ins := instance.NewInstance(clocks.NTSC)
	arb := arbiter.NewArbiter(104)
	d := NewDLC(ins, testMem{view}, arb)
	return d, view
}

// writeBlankDisplayList builds the spec.md §8 scenario 1 program: a run of
// mode-0 blank instructions covering 112 scanlines, followed by a
// jump-and-wait-for-VBI back to the start (opcode 0x41).
func writeBlankDisplayList(view *addrspace.View, base uint16) {
	addr := base
	for i := 0; i < 14; i++ {
		view.Write(addr, 0x70) // blank, count = (0x07)+1 = 8 lines
		addr++
	}
	view.Write(addr, 0x41) // JVB
	addr++
	view.Write(addr, uint8(base))
	view.Write(addr+1, uint8(base>>8))
}

func TestBlankDisplayListStaysBlankAndVBIOncePerFrame(t *testing.T) {
	d, view := newTestDLC(t)
	writeBlankDisplayList(view, 0x4000)
	d.pc = 0x4000
	d.dmaCtrl = 0x21 // playfield + display-list DMA enabled

	vbiCount := 0
	const linesToRun = clocks.NTSCLines * 2

	for i := 0; i < linesToRun; i++ {
		d.BeginLine()
		ready := d.EndLine()
		if !ready.Blank {
			t.Fatalf("line %d: expected a blank scanline, got mode %#x", i, ready.Mode)
		}
		if d.nmiStatus&vbiBit != 0 {
			vbiCount++
			d.nmiStatus &^= vbiBit
		}
	}

	if vbiCount != 2 {
		t.Fatalf("vbiCount = %d, want 2 (once per %d-line frame over %d lines)",
			vbiCount, clocks.NTSCLines, linesToRun)
	}
}

func TestJVBWaitsForVerticalBlank(t *testing.T) {
	d, view := newTestDLC(t)
	writeBlankDisplayList(view, 0x5000)
	d.pc = 0x5000
	d.dmaCtrl = 0x21

	// Run through the 14 blank instructions (112 lines) plus idle lines up
	// to VBIStart; the program counter must not advance past the JVB until
	// YPos reaches 248.
	for i := 0; i < 112; i++ {
		d.BeginLine()
		d.EndLine()
	}
	if d.state != stateIdleForVB && d.state != stateFetchOpcode {
		t.Fatalf("unexpected state after blank run: %s", d.state)
	}

	resumed := false
	for i := 0; i < 300; i++ {
		wasIdle := d.state == stateIdleForVB
		d.BeginLine()
		if wasIdle && d.state != stateIdleForVB {
			// BeginLine both resumes fetching at the jump target and
			// immediately fetches the next opcode in the same call, so pc
			// has already advanced one byte past the target.
			if d.pc != 0x5001 || d.opcode != Opcode(0x70) {
				t.Fatalf("resume fetched pc=%#04x opcode=%#02x, want pc=0x5001 opcode=0x70", d.pc, uint8(d.opcode))
			}
			resumed = true
			break
		}
		d.EndLine()
	}
	if !resumed {
		t.Fatal("JVB never resumed from its vertical-blank wait")
	}
}

// TestRaiseResetNMISetsPendingBit covers the "reset NMI on external
// request" source: there is no register write for it, so a host's keyboard
// collaborator raises it directly, and it clears the same way the other
// two sources do, through a write to the NMI-reset register.
func TestRaiseResetNMISetsPendingBit(t *testing.T) {
	d, _ := newTestDLC(t)
	d.nmiEnable = 0xff

	if d.PendingNMI() != 0 {
		t.Fatalf("PendingNMI = %#02x before RaiseResetNMI, want 0", d.PendingNMI())
	}

	d.RaiseResetNMI()
	if d.PendingNMI()&resetBit == 0 {
		t.Fatalf("PendingNMI = %#02x after RaiseResetNMI, want resetBit set", d.PendingNMI())
	}

	d.WriteRegister(registers.DLCNMIReset, 0)
	if d.PendingNMI() != 0 {
		t.Fatalf("PendingNMI = %#02x after NMI-reset write, want 0", d.PendingNMI())
	}
}

func TestOpcodeBitfields(t *testing.T) {
	o := Opcode(0x41)
	if !o.IsJump() {
		t.Fatal("0x41 should decode as a jump")
	}
	if !o.LoadScanPointer() {
		t.Fatal("0x41 should carry the load-scan-pointer bit")
	}
	if !o.WaitForVB() {
		t.Fatal("0x41 (JVB) should wait for vertical blank")
	}

	blank := Opcode(0x70)
	if blank.Mode() != 0 {
		t.Fatalf("mode = %#x, want 0", blank.Mode())
	}
	if blank.BlankCount() != 8 {
		t.Fatalf("BlankCount = %d, want 8", blank.BlankCount())
	}

	dli := Opcode(0x86) // mode 6, DLI flagged
	if !dli.RaiseDLI() {
		t.Fatal("bit 7 should raise a DLI")
	}
	if dli.Mode() != 0x06 {
		t.Fatalf("mode = %#x, want 6", dli.Mode())
	}
}
