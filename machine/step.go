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

import "github.com/thor8bit/chipcore/clocks"

// Step advances the machine by exactly one colour clock: at the start of a
// line it runs the DLC's fetch state machine far enough to know the line's
// mode and reserve its DMA cycles and resets the CMM's per-line priority
// latch, then tells the DLC which cycle it's at, ticks the CPU collaborator
// unless the arbiter reports this cycle stolen, and at the line's last
// cycle hands the line off to the CMM and samples the DLC's NMI line.
//
// The DLC and CMM's bulk per-line work (dlc.DLC.BeginLine/EndLine,
// cmm.CMM.TriggerScanline) each collapse to a single instantaneous
// computation at a line boundary rather than running once per cycle: but a
// WSYNC write still needs to know which cycle it landed on (dlc.DLC.
// SetCycle feeds that in), since the halt it starts can straddle into the
// next line depending on exactly when it happened.
func (m *Machine) Step() {
	if m.cycle == 0 {
		m.dlc.BeginLine()
		m.cmm.BeginLine()
	}

	m.dlc.SetCycle(m.cycle)
	if !m.arb.IsBusy(m.cycle) {
		m.cpu.Cycle()
	}

	m.cycle++
	if m.cycle < clocks.CyclesPerLine {
		return
	}
	m.cycle = 0

	y := m.dlc.YPos()
	ready := m.dlc.EndLine()
	pixels := m.cmm.TriggerScanline(ready, m.mem)
	if m.sink != nil {
		m.sink.PushLine(y, pixels)
	}

	m.cpu.SetNMI(m.dlc.PendingNMI() != 0)
	if m.dlc.YPos() == clocks.VBIStart {
		m.cmm.VBI()
	}
}

// StepLine runs exactly one scanline's worth of colour clocks (one full
// BeginLine/EndLine cycle), a convenience for callers, such as
// cmd/scanlinedump, that don't drive a real CPU collaborator cycle by
// cycle.
func (m *Machine) StepLine() {
	for i := 0; i < clocks.CyclesPerLine; i++ {
		m.Step()
	}
}
