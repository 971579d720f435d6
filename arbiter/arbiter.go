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

// Package arbiter tracks, for the current scanline, which colour-clock
// slots are stolen from the CPU by DMA, by a WSYNC halt, or by memory
// refresh, and exposes a single busy bit the CPU stepper consults each
// cycle. See spec.md §4.1.
package arbiter

import "github.com/thor8bit/chipcore/clocks"

// Arbiter owns the per-line cycle-steal mask. Reservation is last-writer-
// wins; there is no failure mode, since the fixed DMA schedules can never
// overcommit the 114 cycles of a line (spec.md §4.1 "Failure: none
// observable").
type Arbiter struct {
	busy [clocks.CyclesPerLine]bool

	// halting is true from the cycle WSYNC was written until the release
	// slot; haltCarry holds how many cycles of the halt must additionally
	// block the start of the next line (spec.md invariant 6).
	halting   bool
	haltStart int
	haltCarry int

	releaseSlot int
}

// NewArbiter returns an arbiter that releases a WSYNC halt at releaseSlot
// (instance.NewInstance supplies 104).
func NewArbiter(releaseSlot int) *Arbiter {
	return &Arbiter{releaseSlot: releaseSlot}
}

// Clear resets the mask for a new scanline and applies any halt carried over
// from the previous line's late WSYNC (invariant 6).
func (a *Arbiter) Clear() {
	for i := range a.busy {
		a.busy[i] = false
	}
	if a.haltCarry > 0 {
		for c := 0; c < a.haltCarry && c < clocks.CyclesPerLine; c++ {
			a.busy[c] = true
		}
	}
	a.haltCarry = 0
	a.halting = false
}

// Reserve marks count consecutive cycles starting at first as stolen by DMA.
// Reservations silently overwrite any previous reservation of the same
// cycles; the last reserver wins.
func (a *Arbiter) Reserve(first, count int) {
	for c := first; c < first+count && c < clocks.CyclesPerLine; c++ {
		if c >= 0 {
			a.busy[c] = true
		}
	}
}

// ReserveCycles marks each of the given absolute cycle numbers as stolen.
func (a *Arbiter) ReserveCycles(cycles []int) {
	for _, c := range cycles {
		if c >= 0 && c < clocks.CyclesPerLine {
			a.busy[c] = true
		}
	}
}

// ReserveRefresh adds up to two cycles of memory-refresh slack starting at
// slot.
func (a *Arbiter) ReserveRefresh(slot int) {
	a.Reserve(slot, 2)
}

// WSync marks the CPU halted from the current cycle onward. If cycle is at
// or beyond the release slot, the halt carries into the next line instead
// (invariant 6: "if set beyond that slot, halt carries into the next
// scanline from its start") and lasts until that line's release slot.
func (a *Arbiter) WSync(cycle int) {
	if cycle >= a.releaseSlot {
		a.haltCarry = a.releaseSlot
		return
	}
	a.halting = true
	a.haltStart = cycle
	a.Reserve(cycle, a.releaseSlot-cycle)
}

// IsBusy reports whether the CPU is blocked at the given cycle of the
// current line, by any source (DMA, WSYNC halt, or refresh).
func (a *Arbiter) IsBusy(cycle int) bool {
	if cycle < 0 || cycle >= clocks.CyclesPerLine {
		return false
	}
	return a.busy[cycle]
}

// HaltStart returns the cycle at which the most recent WSYNC halt began,
// for diagnostics.
func (a *Arbiter) HaltStart() int {
	return a.haltStart
}
