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

// Package instance defines the parts of an emulation's configuration that
// are passed explicitly into every subsystem constructor, rather than kept
// as process-global mutable state. This allows more than one machine to run
// in the same process (e.g. in tests) without interference.
package instance

import "github.com/thor8bit/chipcore/clocks"

// ChipGeneration selects which CMM silicon revision is being emulated. The
// generations differ in artefact colours and in which of the "processed"
// display modes exist.
type ChipGeneration int

const (
	CTIA ChipGeneration = iota
	GTIA1
	GTIA2
)

// String implements fmt.Stringer.
func (g ChipGeneration) String() string {
	switch g {
	case GTIA1:
		return "GTIA-1"
	case GTIA2:
		return "GTIA-2"
	default:
		return "CTIA"
	}
}

// Instance carries the configuration for one emulated machine.
type Instance struct {
	Standard       clocks.Standard
	ChipGeneration ChipGeneration

	// WSyncRelease is the cycle at which a WSYNC halt is automatically
	// released if the CPU has not yet reached it. Defaults to 104.
	WSyncRelease int

	// ColPF1FiddledArtifacts enables the hi-res colour-fiddling artefact
	// post-processor.
	ColPF1FiddledArtifacts bool
}

// NewInstance is the preferred method of initialisation for Instance. It
// fills in the defaults used throughout the core.
func NewInstance(standard clocks.Standard) *Instance {
	return &Instance{
		Standard:               standard,
		ChipGeneration:         GTIA1,
		WSyncRelease:           104,
		ColPF1FiddledArtifacts: true,
	}
}
