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

package pmengine

// Overlay bit assignments. Missiles share one byte's worth of bits so that
// the "missile as third player" priority mode can treat all four as one
// combined object (spec.md §4.5).
const (
	BitPlayer0  = uint8(0x01)
	BitPlayer1  = uint8(0x02)
	BitPlayer2  = uint8(0x04)
	BitPlayer3  = uint8(0x08)
	BitMissile0 = uint8(0x10)
	BitMissile1 = uint8(0x20)
	BitMissile2 = uint8(0x40)
	BitMissile3 = uint8(0x80)
)

// Engine owns the four players and four missiles and the shared overlay
// buffer they render into each scanline.
type Engine struct {
	Players  [4]*Object
	Missiles [4]*Object

	// VDelay gates DMA-driven graphics reloads to odd scanlines per-object:
	// bits 0-3 for missiles, bits 4-7 for players (spec.md §6 offset 0x1C).
	VDelay uint8

	Overlay [OverlayWidth]uint8
}

// NewEngine returns an engine with all eight objects at their power-on
// state.
func NewEngine() *Engine {
	e := &Engine{
		Players: [4]*Object{
			NewPlayer(BitPlayer0), NewPlayer(BitPlayer1),
			NewPlayer(BitPlayer2), NewPlayer(BitPlayer3),
		},
		Missiles: [4]*Object{
			NewMissile(BitMissile0), NewMissile(BitMissile1),
			NewMissile(BitMissile2), NewMissile(BitMissile3),
		},
	}
	return e
}

// ColdStart resets every object and the vertical-delay mask.
func (e *Engine) ColdStart() {
	for _, p := range e.Players {
		p.Reset()
	}
	for _, m := range e.Missiles {
		m.Reset()
	}
	e.VDelay = 0
	e.ClearOverlay()
}

// ClearOverlay zeroes the shared render target at the start of a scanline.
func (e *Engine) ClearOverlay() {
	for i := range e.Overlay {
		e.Overlay[i] = 0
	}
}

// Render draws every object's current graphics into the overlay, high
// priority (player 0 / missile 0) to low, per spec.md §4.4. Since the
// overlay is an OR-accumulated bitmask the draw order does not affect the
// result; it is kept in priority order for readability and to match the
// reference implementation's render loop.
func (e *Engine) Render() {
	for _, p := range e.Players {
		p.RenderCurrent(e.Overlay[:])
	}
	for _, m := range e.Missiles {
		m.RenderCurrent(e.Overlay[:])
	}
}

// VerticalDelayActive reports whether a DMA-driven graphics reload for the
// given object should be suppressed this scanline: vertical delay gates
// reloads to odd scanlines only (spec.md §4.4).
func (e *Engine) VerticalDelayActive(isPlayer bool, index int, scanline int) bool {
	var bit uint8
	if isPlayer {
		bit = 0x10 << uint(index)
	} else {
		bit = 0x01 << uint(index)
	}
	if e.VDelay&bit == 0 {
		return false
	}
	return scanline%2 == 0
}

// ContributesToCollision reports whether an object's decoded position
// falls within the border window; outside it, spec.md invariant 2 requires
// it contribute no collision bits and no visible pixels.
func ContributesToCollision(o *Object) bool {
	return o.DecodedPosition >= PlayerLeftBorder && o.DecodedPosition <= PlayerRightBorder
}
