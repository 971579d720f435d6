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

// Command scanlinedump drives a Machine through a built-in blank display
// list for a number of frames and prints a summary line for each of the
// first -limit scanlines (20 by default): the line number and the first few
// palette-index bytes the CMM produced for it. It exists to exercise Machine.Step/StepLine end to end without a CPU,
// the same blank-display-list-plus-JVB program the dlc and machine test
// suites build by hand.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/thor8bit/chipcore/clocks"
	"github.com/thor8bit/chipcore/input"
	"github.com/thor8bit/chipcore/instance"
	"github.com/thor8bit/chipcore/logger"
	"github.com/thor8bit/chipcore/machine"
	"github.com/thor8bit/chipcore/memory/addrspace"
	"github.com/thor8bit/chipcore/memory/registers"
)

// idleCPU is the CPUStepper a host without its own 6502 plugs in: it never
// advances a program counter, it just counts the cycles it's offered and
// remembers whether NMI was ever asserted. The instruction decoder itself
// is out of core scope.
type idleCPU struct {
	cycles  int
	nmiLine bool
}

func (c *idleCPU) Cycle() { c.cycles++ }

func (c *idleCPU) SetNMI(asserted bool) { c.nmiLine = c.nmiLine || asserted }

// dumpSink prints a one-line summary of each scanline it receives.
type dumpSink struct {
	w       *os.File
	sample  int
	printed int
	limit   int
}

func (s *dumpSink) PushLine(y int, pixels []uint8) {
	if s.limit > 0 && s.printed >= s.limit {
		return
	}
	s.printed++
	n := s.sample
	if n > len(pixels) {
		n = len(pixels)
	}
	fmt.Fprintf(s.w, "line %3d:", y)
	for i := 0; i < n; i++ {
		fmt.Fprintf(s.w, " %02x", pixels[i])
	}
	fmt.Fprintln(s.w)
}

// writeBlankDisplayList mirrors the scenario machine_test.go and
// dlc_test.go build by hand: a run of mode-0 blank instructions covering
// 112 scanlines, followed by a jump-and-wait-for-VBI back to the start.
func writeBlankDisplayList(view *addrspace.View, base uint16) {
	addr := base
	for i := 0; i < 14; i++ {
		view.Write(addr, 0x70)
		addr++
	}
	view.Write(addr, 0x41)
	addr++
	view.Write(addr, uint8(base))
	view.Write(addr+1, uint8(base>>8))
}

func main() {
	frames := flag.Int("frames", 1, "number of frames to run")
	baseFlag := flag.String("base", "4000", "hex address of the display list program")
	standardFlag := flag.String("standard", "ntsc", "ntsc or pal")
	sample := flag.Int("sample", 8, "number of leading palette-index bytes to print per line")
	limit := flag.Int("limit", 20, "maximum number of scanlines printed (0 = unlimited)")
	flag.Parse()

	base, err := strconv.ParseUint(*baseFlag, 16, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scanlinedump: bad -base %q: %v\n", *baseFlag, err)
		os.Exit(2)
	}

	standard := clocks.NTSC
	if *standardFlag == "pal" {
		standard = clocks.PAL
	}

	space := addrspace.NewSpace()
	view := addrspace.NewDLCView(space)
	writeBlankDisplayList(view, uint16(base))

	ins := instance.NewInstance(standard)
	cpu := &idleCPU{}
	sink := &dumpSink{w: os.Stdout, sample: *sample, limit: *limit}

	m := machine.NewMachine(ins, view, cpu, input.NewPad(), sink)
	m.ColdStart()
	m.DLC().WriteRegister(registers.DLCDListLo, uint8(base))
	m.DLC().WriteRegister(registers.DLCDListHi, uint8(base>>8))
	m.DLC().WriteRegister(registers.DLCDMACtrl, 0x21)

	for f := 0; f < *frames; f++ {
		for l := 0; l < standard.TotalLines(); l++ {
			m.StepLine()
		}
	}

	fmt.Fprintf(os.Stdout, "cpu cycles ticked: %d, nmi asserted at least once: %v\n", cpu.cycles, cpu.nmiLine)
	logger.Write(os.Stdout)
}
