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

// Package colortable holds the sixteen "pre-computed colour" slots the
// playfield decoder, the player/missile engine and the priority resolver
// all index into, and the colour registers that fill them.
package colortable

// Slot identifies one of the sixteen pre-computed colour entries. The
// ordering and the seven entries beyond the nine hardware colour registers
// (fiddled playfield-1, two artefact colours, two merged-player colours,
// black, and the background-mask alias) mirror the reference silicon's own
// internal colour table exactly, not just its nine visible registers.
type Slot int

const (
	Player0 Slot = iota
	Player1
	Player2
	Player3
	Playfield0
	Playfield1
	Playfield2
	Playfield3
	Background
	Playfield1Fiddled
	PlayfieldArtifact1
	PlayfieldArtifact2
	Player0Or1
	Player2Or3
	Black
	BackgroundMask
	numSlots
)

// Table holds the sixteen slots as raw hue/luminance register bytes plus
// the derived entries, rewritten on every colour-register write per
// spec.md §3 ("Colour entries are rewritten on each write to a colour
// register").
type Table struct {
	entries [numSlots]uint8
}

// NewTable returns a zeroed colour table (all-black, as at power-on).
func NewTable() *Table {
	return &Table{}
}

// Get returns the raw colour byte stored in a slot.
func (t *Table) Get(s Slot) uint8 {
	return t.entries[s]
}

// SetPlayerColor writes one of the four player colour registers and
// recomputes the merged Player0Or1 / Player2Or3 slots.
func (t *Table) SetPlayerColor(index int, value uint8) {
	t.entries[Player0+Slot(index)] = value
	t.recomputeMerges()
}

// SetPlayfieldColor writes one of the four playfield colour registers and
// recomputes the fiddled-PF1 slot, since it mixes PF1's value with PF2's
// hue (spec.md §4.3: "the hue of ColPF2 merged with the value of ColPF1").
func (t *Table) SetPlayfieldColor(index int, value uint8) {
	t.entries[Playfield0+Slot(index)] = value
	t.recomputeFiddled()
}

// SetBackground writes the background colour register.
func (t *Table) SetBackground(value uint8) {
	t.entries[Background] = value
	t.entries[BackgroundMask] = value
}

// recomputeFiddled derives Playfield1Fiddled from PF1's value nibble and
// PF2's hue nibble. It leaves the two artefact slots alone: those are set
// by SetArtifactColors, since they depend on silicon revision rather than
// a register write.
func (t *Table) recomputeFiddled() {
	hue := t.entries[Playfield2] & 0xF0
	value := t.entries[Playfield1] & 0x0F
	t.entries[Playfield1Fiddled] = hue | value
}

// SetArtifactColors sets the two hi-res artefact colours, which depend on
// chip generation rather than any register (spec.md §4.3: "predefined
// 'artefact' colours whose values depend on the chip generation").
func (t *Table) SetArtifactColors(c1, c2 uint8) {
	t.entries[PlayfieldArtifact1] = c1
	t.entries[PlayfieldArtifact2] = c2
}

func (t *Table) recomputeMerges() {
	t.entries[Player0Or1] = t.entries[Player0] | t.entries[Player1]
	t.entries[Player2Or3] = t.entries[Player2] | t.entries[Player3]
}
