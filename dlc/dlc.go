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
	"fmt"

	"github.com/thor8bit/chipcore/arbiter"
	"github.com/thor8bit/chipcore/clocks"
	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/logger"
	"github.com/thor8bit/chipcore/memory/registers"
)

// dlcState is the display-list fetch state, a tagged-variant enum driving a
// flat step function rather than the virtual ModeLine dispatch of the
// reference implementation (spec.md §9 design note).
type dlcState int

// Fixed arbiter slot offsets for the DLC's own DMA (spec.md §4.1: "The DLC
// reserves its display-list fetch..., its load-scan-pointer fetch...").
const (
	ScheduleRefreshSlot     = 8
	ScheduleDListFetchSlot  = 0
)

const (
	stateFetchOpcode dlcState = iota
	stateFetchJumpLo
	stateFetchJumpHi
	stateFetchLMS
	stateModeLine
	stateEndLine
	stateIdleForVB
)

func (s dlcState) String() string {
	switch s {
	case stateFetchOpcode:
		return "FetchOpcode"
	case stateFetchJumpLo:
		return "FetchJumpLo"
	case stateFetchJumpHi:
		return "FetchJumpHi"
	case stateFetchLMS:
		return "FetchLMS"
	case stateModeLine:
		return "ModeLine"
	case stateEndLine:
		return "EndLine"
	case stateIdleForVB:
		return "IdleForVB"
	default:
		return "Unknown"
	}
}

// Bus is the memory view the DLC fetches the display list and playfield
// data through; distinct from the CPU's view per spec.md §3.
type Bus interface {
	Read(address uint16) (uint8, error)
}

// DLC is the display-list DMA controller.
type DLC struct {
	ins *instance.Instance
	mem Bus
	arb *arbiter.Arbiter

	pc       uint16
	pfBase   uint16
	chBase   uint16
	pmBase   uint8
	charCtrl uint8
	dmaCtrl  uint8
	hscroll  uint8
	vscroll  uint8

	nmiEnable uint8
	nmiStatus uint8

	state          dlcState
	opcode         Opcode
	prevIR         uint8
	subline        int
	linesRemaining int
	waitForVB      bool

	yPos     int
	standard clocks.Standard
	cycle    int

	scanbuffer Scanbuffer
	char20     CharacterGenerator
	char40     CharacterGenerator

	lightPenH, lightPenV uint8
}

// NewDLC returns a DLC wired to the given instance, memory view, and cycle
// arbiter, reset to its power-on state.
func NewDLC(ins *instance.Instance, mem Bus, arb *arbiter.Arbiter) *DLC {
	d := &DLC{ins: ins, mem: mem, arb: arb, standard: ins.Standard}
	d.ColdStart()
	return d
}

// ColdStart clears all DLC state, including the NMI-enable mask a warm
// reset preserves (spec.md §9 Open Question #3).
func (d *DLC) ColdStart() {
	*d = DLC{ins: d.ins, mem: d.mem, arb: d.arb, standard: d.ins.Standard}
	d.state = stateFetchOpcode
}

// WarmStart resets scan state but preserves the NMI-enable mask, per
// spec.md §9 Open Question #3 ("the source preserves them on warm and
// clears on cold").
func (d *DLC) WarmStart() {
	nmiEnable := d.nmiEnable
	d.ColdStart()
	d.nmiEnable = nmiEnable
}

// YPos returns the current display Y position.
func (d *DLC) YPos() int {
	return d.yPos
}

// TotalLines returns the number of scanlines in a full frame for this
// DLC's video standard.
func (d *DLC) TotalLines() int {
	return d.standard.TotalLines()
}

// SetCycle records the colour clock a host is currently stepping the CPU
// at, so that a WSYNC write arriving through WriteRegister halts from the
// cycle it actually happened at rather than always from the start of the
// line. A host that drives the CPU one cycle at a time (machine.Machine)
// calls this once per cycle, before giving the CPU a chance to write.
func (d *DLC) SetCycle(cycle int) {
	d.cycle = cycle
}

// ReadRegister implements bus.RegisterBus for the DLC's chip page.
func (d *DLC) ReadRegister(offset uint8) uint8 {
	switch offset % registers.DLCPageSize {
	case registers.DLCVCount:
		return uint8(d.yPos / 2)
	case registers.DLCLightPenH:
		return d.lightPenH
	case registers.DLCLightPenV:
		return d.lightPenV
	case registers.DLCNMIStatus:
		return d.nmiStatus
	default:
		return 0xFF
	}
}

// WriteRegister implements bus.RegisterBus for the DLC's chip page.
func (d *DLC) WriteRegister(offset uint8, value uint8) {
	switch offset % registers.DLCPageSize {
	case registers.DLCDListLo:
		d.pc = (d.pc & 0xFF00) | uint16(value)
	case registers.DLCDListHi:
		d.pc = (d.pc & 0x00FF) | uint16(value)<<8
	case registers.DLCDMACtrl:
		d.dmaCtrl = value
	case registers.DLCCharCtrl:
		d.charCtrl = value
		d.char20.UpsideDown = value&0x04 != 0
		d.char40.UpsideDown = value&0x04 != 0
		if value&0x02 != 0 {
			d.char20.InvertMask, d.char40.InvertMask = 0x80, 0x80
		} else {
			d.char20.InvertMask, d.char40.InvertMask = 0, 0
		}
		if value&0x01 != 0 {
			d.char20.BlankMask, d.char40.BlankMask = 0x60, 0x60
		} else {
			d.char20.BlankMask, d.char40.BlankMask = 0, 0
		}
	case registers.DLCCharBase:
		d.chBase = uint16(value) << 8
		d.char40.Base = d.chBase
		d.char20.Base = d.chBase &^ 0x3FF
	case registers.DLCWSync:
		d.arb.WSync(d.cycle)
	case registers.DLCPMBase:
		// Write-only from the CPU's perspective on the reference silicon,
		// but still stateful: it is kept and round-trips through a
		// snapshot (Save/Load).
		d.pmBase = value
	case registers.DLCHScroll:
		d.hscroll = value & 0x0F
	case registers.DLCVScroll:
		d.vscroll = value & 0x0F
	case registers.DLCNMIEnable:
		d.nmiEnable = value
	case registers.DLCNMIReset:
		d.nmiStatus = 0
	default:
		logger.Log("dlc", "write to read-only or unknown offset %#02x", offset)
	}
}

// PendingNMI returns the bits of nmiStatus currently asserted and enabled,
// the value the DLC ORs into the CPU's NMI line.
func (d *DLC) PendingNMI() uint8 {
	return d.nmiStatus & d.nmiEnable
}

// RaiseResetNMI raises the "reset key" NMI source: an otherwise absent
// console-key wiring on some models that a host's keyboard collaborator
// can request directly, since there is no register a guest program writes
// to trigger it. It is cleared the same way the other two sources are,
// by a write to the NMI-reset register.
func (d *DLC) RaiseResetNMI() {
	d.raiseNMI(resetBit)
}

func (d *DLC) raiseNMI(bit uint8) {
	d.nmiStatus |= bit
}

// String renders a one-line diagnostic dump, grounded on the reference
// implementation's DisplayStatus convention (spec.md realization note,
// §6 [ADDED]).
func (d *DLC) String() string {
	return fmt.Sprintf("dlc: pc=%#04x y=%d state=%s mode=%#x nmien=%#02x nmist=%#02x",
		d.pc, d.yPos, d.state, d.opcode.Mode(), d.nmiEnable, d.nmiStatus)
}
