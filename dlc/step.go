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
	"github.com/thor8bit/chipcore/arbiter"
	"github.com/thor8bit/chipcore/clocks"
)

// dliBit, vbiBit and resetBit are the NMI status bits raised by the DLC;
// named per the DLC register file (spec.md §6).
const (
	dliBit   = uint8(0x80)
	vbiBit   = uint8(0x40)
	resetBit = uint8(0x20)
)

// BeginLine runs the display-list fetch state machine far enough to know
// this line's mode (or that the line is idle while waiting for VBI), and
// reserves this line's DMA cycles with the arbiter. It is called once at
// the start of every scanline, before the CPU steps through the line's 114
// cycles.
//
// The fetch state machine itself is not modelled cycle-by-cycle here (the
// reference silicon spreads DList/LMS fetches across specific early
// cycles of a line); BeginLine performs the equivalent work instantaneously
// at line start and only the DMA cycle *reservations* it produces are
// cycle-accurate, which is what the arbiter and the 114-cycle invariant
// actually observe.
func (d *DLC) BeginLine() {
	d.arb.Clear()
	d.arb.ReserveRefresh(ScheduleRefreshSlot)

	if d.linesRemaining > 0 {
		d.reservePlayfieldDMA()
		return
	}

	for {
		switch d.state {
		case stateFetchOpcode:
			b, _ := d.mem.Read(d.pc)
			d.pc++
			d.opcode = Opcode(b)
			d.arb.Reserve(ScheduleDListFetchSlot, 1)
			if d.opcode.IsJump() {
				d.state = stateFetchJumpLo
				continue
			}
			if d.opcode.Mode() == 0x00 {
				// Blank-line bits 4-6 are a count field, not HScroll/
				// VScroll/LoadScanPointer flags (spec.md §3): no LMS fetch.
				d.linesRemaining = d.opcode.BlankCount()
				d.subline = 0
				d.prevIR = uint8(d.opcode)
				d.state = stateModeLine
				return
			}
			d.state = stateFetchLMS
			continue

		case stateFetchLMS:
			if d.opcode.LoadScanPointer() {
				lo, _ := d.mem.Read(d.pc)
				hi, _ := d.mem.Read(d.pc + 1)
				d.pc += 2
				d.pfBase = uint16(lo) | uint16(hi)<<8
				d.arb.Reserve(ScheduleDListFetchSlot+1, 2)
			}
			kind := Modes[d.opcode.Mode()]
			d.linesRemaining = kind.ScanLines
			d.subline = 0
			d.prevIR = uint8(d.opcode)
			d.state = stateModeLine
			d.reservePlayfieldDMA()
			return

		case stateFetchJumpLo:
			lo, _ := d.mem.Read(d.pc)
			d.pc++
			d.pfBase = (d.pfBase & 0xFF00) | uint16(lo)
			d.state = stateFetchJumpHi
			continue

		case stateFetchJumpHi:
			hi, _ := d.mem.Read(d.pc)
			d.pc++
			newPC := (uint16(hi) << 8) | (d.pfBase & 0x00FF)
			if d.opcode.WaitForVB() && d.yPos < int(vbiLine(d.standard)) {
				d.waitForVB = true
				d.state = stateIdleForVB
				d.pc = newPC
				return
			}
			d.pc = newPC
			d.state = stateFetchOpcode
			continue

		case stateIdleForVB:
			if d.yPos >= int(vbiLine(d.standard)) {
				d.waitForVB = false
				d.state = stateFetchOpcode
				continue
			}
			return

		default:
			d.state = stateFetchOpcode
			continue
		}
	}
}

func vbiLine(s interface{ TotalLines() int }) int {
	// VBIStart is fixed regardless of NTSC/PAL (spec.md §3).
	_ = s
	return clocks.VBIStart
}

// reservePlayfieldDMA reserves this line's playfield DMA cycles with the
// arbiter, using the active mode line's width schedule.
func (d *DLC) reservePlayfieldDMA() {
	kind := Modes[d.opcode.Mode()]
	if kind.Width == arbiter.WidthNone || d.dmaCtrl&0x03 == 0 {
		return
	}
	count := kind.Width.BytesFor(kind.DMAShift)
	sched := arbiter.NewSchedule(count)
	d.arb.ReserveCycles(sched.CyclesFor())
}

// EndLine completes the current scanline: it fills the scanbuffer from
// memory, raises a DLI if this was the mode line's final sub-line, advances
// YPos (wrapping at the frame height and raising VBI at VBIStart), and
// returns the by-value handoff the CMM consumes.
func (d *DLC) EndLine() ScanlineReady {
	kind := Modes[d.opcode.Mode()]
	ready := ScanlineReady{
		Mode:       d.opcode.Mode(),
		Fiddled:    kind.Fiddle,
		Blank:      d.opcode.Mode() == 0x00 || d.waitForVB,
		HScroll:    d.hscroll,
		DisplayRow: d.subline,
	}

	if !ready.Blank && d.linesRemaining > 0 {
		d.fetchScanbuffer(kind, &ready)
	}
	ready.Scanbuffer = d.scanbuffer

	if d.linesRemaining > 0 {
		d.linesRemaining--
		d.subline++
		if d.linesRemaining == 0 {
			d.state = stateFetchOpcode
			if d.opcode.RaiseDLI() {
				d.raiseNMI(dliBit)
			}
		}
	}

	d.yPos++
	if d.yPos == vbiLine(d.standard) {
		d.raiseNMI(vbiBit)
	}
	if d.yPos >= d.standard.TotalLines() {
		d.yPos = 0
	}

	return ready
}

// fetchScanbuffer pulls this mode line's playfield bytes into the
// scanbuffer, from the character generator's byte stream or the bitmap
// base, per spec.md §4.3.
func (d *DLC) fetchScanbuffer(kind ModeKind, ready *ScanlineReady) {
	count := kind.Width.BytesFor(kind.DMAShift)
	if count == 0 {
		return
	}
	if kind.CharMode {
		ready.CharGen = d.charGenFor(kind)
	}
	for i := 0; i < count && i < len(d.scanbuffer); i++ {
		b, _ := d.mem.Read(d.pfBase + uint16(i))
		d.scanbuffer[i] = b
	}
	d.pfBase += uint16(count)
}

// charGenFor returns the 20- or 40-column character generator for a
// character mode line, selected by the mode's DMA width.
func (d *DLC) charGenFor(kind ModeKind) *CharacterGenerator {
	if kind.Width == arbiter.WidthNarrow {
		return &d.char20
	}
	return &d.char40
}
