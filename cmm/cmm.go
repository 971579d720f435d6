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

// Package cmm implements the colour-merger/multiplexer chip proper: the
// register file that wires the player/missile engine, the priority
// resolver, the display-generator matrix and the colour table together
// behind one memory-mapped page, and produces one scanline's worth of
// final colour bytes per call.
package cmm

import (
	"fmt"

	"github.com/thor8bit/chipcore/colortable"
	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/palette"
	"github.com/thor8bit/chipcore/pmengine"
	"github.com/thor8bit/chipcore/postprocess"
	"github.com/thor8bit/chipcore/priority"
)

// Input is the minimal joystick-trigger and console-switch read surface the
// register file exposes at offsets 0x0D-0x10 and 0x1F. The input devices
// themselves are a collaborator out of core scope; this is the seam a host
// wires an implementation into.
type Input interface {
	Trigger(index int) bool
	ConsoleSwitches() uint8
}

// noInput is the power-on default: no triggers pressed, all switches up.
type noInput struct{}

func (noInput) Trigger(int) bool       { return false }
func (noInput) ConsoleSwitches() uint8 { return 0x0f }

// CMM owns the player/missile engine, the colour table, the priority
// tables and the register shadow state, and turns one scanline's handoff
// from the display-list controller into final colour bytes.
type CMM struct {
	ins   *instance.Instance
	input Input

	engine *pmengine.Engine
	ct     *colortable.Table
	pt     *priority.Tables

	priorCtrl    uint8
	initialPrior uint8
	graCtl       uint8
	consoleOut   uint8

	pal      [palette.Size]postprocess.PackedRGB
	pp       *postprocess.Processor
	ppChain  postprocess.Chain
	ppWidth  int
	ppHeight int
}

// NewCMM returns a CMM wired to the given instance configuration and input
// surface (nil selects the power-on default of no input), reset to its
// power-on state.
func NewCMM(ins *instance.Instance, input Input) *CMM {
	if input == nil {
		input = noInput{}
	}
	c := &CMM{ins: ins, input: input}
	c.ColdStart()
	return c
}

// artifactColors returns the hi-res artefact hue/value pair for a chip
// generation, reproduced verbatim from the reference chip's artefacting
// setup (spec.md §4.3).
func artifactColors(gen instance.ChipGeneration) (uint8, uint8) {
	switch gen {
	case instance.GTIA1:
		return 0xa0, 0x40
	case instance.GTIA2:
		return 0x90, 0x20
	default:
		return 0x80, 0xc0
	}
}

// ColdStart clears every register and rebuilds the player/missile engine,
// colour table and priority tables from scratch.
func (c *CMM) ColdStart() {
	c.engine = pmengine.NewEngine()
	c.ct = colortable.NewTable()
	c.pt = priority.NewTables()

	c1, c2 := artifactColors(c.ins.ChipGeneration)
	c.ct.SetArtifactColors(c1, c2)

	c.priorCtrl = 0
	c.initialPrior = 0
	c.graCtl = 0
	c.consoleOut = 0

	c.pal = palette.Default()
	c.pp = nil
}

// WarmStart resets the player/missile engine but preserves the colour
// table, the priority tables and the priority-control register, per
// spec.md §9 Open Question 3.
func (c *CMM) WarmStart() {
	c.engine.ColdStart()
	c.initialPrior = 0
	c.graCtl = 0
}

// BeginLine seeds the line's accumulated initial-priority tracking from
// whatever priority-control value is in effect as the line begins, mirroring
// the reference chip's own horizontal-blank capture of Prior&0xc0; a write
// later in the line ORs its value in on top (spec.md §4.6 mode-selection
// contract).
func (c *CMM) BeginLine() {
	c.initialPrior = c.priorCtrl & 0xc0
}

// String renders a one-line diagnostic dump, matching the reference
// chip's own DisplayStatus convention (spec.md §6 [ADDED]).
func (c *CMM) String() string {
	return fmt.Sprintf("cmm: prior=%#02x initprior=%#02x gractl=%#02x consol=%#02x",
		c.priorCtrl, c.initialPrior, c.graCtl, c.consoleOut)
}
