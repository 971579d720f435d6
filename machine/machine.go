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

// Package machine wires the display-list controller, the colour merger and
// the cycle arbiter together into the single cooperative step loop the rest
// of the core is a collaborator of: one call to Step advances every chip by
// exactly one colour clock, in a fixed subscriber order, the same contract
// the reference implementation's own CycleAction chain provides.
package machine

import (
	"fmt"

	"github.com/thor8bit/chipcore/arbiter"
	"github.com/thor8bit/chipcore/clocks"
	"github.com/thor8bit/chipcore/cmm"
	"github.com/thor8bit/chipcore/dlc"
	"github.com/thor8bit/chipcore/instance"
)

// CPUStepper is the minimal surface the 6502-class CPU collaborator must
// satisfy. The instruction decoder itself is out of core scope; only its
// cycle-steal and IRQ/NMI surface is specified here.
type CPUStepper interface {
	// Cycle advances the CPU by exactly one colour clock. Step only calls
	// this when the arbiter reports the current cycle unstolen; a CPU
	// halted by its own WSYNC or a DMA steal is simply not ticked this
	// cycle, matching the reference chip's own cycle-stretching behaviour
	// rather than modelling a separate halt state.
	Cycle()

	// SetNMI reports the current level of the NMI line, sampled once per
	// scanline after the DLC's DLI/VBI status is updated. The line is
	// level-sensitive, not edge-triggered: a CPU collaborator clears it by
	// acknowledging through the DLC's own NMI-reset register.
	SetNMI(asserted bool)
}

// Sink receives each finished scanline's pixels as they are produced.
// Pixels are raw palette indices unless the caller has separately run them
// through cmm.CMM.PostProcess; Machine itself never does, packed-RGB
// realization is a host sink's decision, not the core's.
type Sink interface {
	PushLine(y int, pixels []uint8)
}

// Machine is the top-level cooperative scheduler: one DLC, one CMM, one
// cycle arbiter, and whatever CPU collaborator and pixel sink the caller
// supplies.
type Machine struct {
	ins *instance.Instance
	mem dlc.Bus
	cpu CPUStepper
	sink Sink

	arb *arbiter.Arbiter
	dlc *dlc.DLC
	cmm *cmm.CMM

	cycle int
}

// NewMachine returns a Machine wired to the given instance configuration,
// memory view, CPU collaborator and input surface, reset to its power-on
// state. sink may be nil, in which case finished scanlines are discarded.
func NewMachine(ins *instance.Instance, mem dlc.Bus, cpu CPUStepper, input cmm.Input, sink Sink) *Machine {
	arb := arbiter.NewArbiter(ins.WSyncRelease)
	m := &Machine{
		ins:  ins,
		mem:  mem,
		cpu:  cpu,
		sink: sink,
		arb:  arb,
		dlc:  dlc.NewDLC(ins, mem, arb),
		cmm:  cmm.NewCMM(ins, input),
	}
	return m
}

// DLC returns the display-list controller, for callers that need direct
// register access (a bus.RegisterBus implementation wiring it into an
// address space is an MMU concern, out of core scope).
func (m *Machine) DLC() *dlc.DLC { return m.dlc }

// CMM returns the colour merger, for the same reason.
func (m *Machine) CMM() *cmm.CMM { return m.cmm }

// ColdStart resets every chip and the cycle arbiter to their power-on
// state.
func (m *Machine) ColdStart() {
	m.arb.Clear()
	m.dlc.ColdStart()
	m.cmm.ColdStart()
	m.cycle = 0
}

// WarmStart resets scan state while preserving what each chip's own
// WarmStart preserves (the DLC's NMI-enable mask, the CMM's colour table).
func (m *Machine) WarmStart() {
	m.dlc.WarmStart()
	m.cmm.WarmStart()
	m.cycle = 0
}

// String renders a one-line diagnostic dump combining both chips' own.
func (m *Machine) String() string {
	return fmt.Sprintf("machine: cycle=%d/%d %s %s", m.cycle, clocks.CyclesPerLine, m.dlc, m.cmm)
}
