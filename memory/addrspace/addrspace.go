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

// Package addrspace implements the 64KiB byte-addressable memory shared by
// the CPU and the display-list controller.
package addrspace

// Space is the full 64KiB backing store. It has no notion of who is
// accessing it; Views provide that.
type Space struct {
	ram [65536]uint8
}

// NewSpace returns a zeroed address space.
func NewSpace() *Space {
	return &Space{}
}

// View is an accessor onto a Space. The CPU and the DLC each get their own
// View so that a banking/MMU layer can later let the two diverge (e.g. the
// DLC fetching through a fixed bank while the CPU sees a switched one)
// without touching either caller.
type View struct {
	space *Space
	// bankOffset, if non-zero, is added (mod 65536) to every address before
	// indexing into the backing store. It exists so banking can be modelled
	// later without changing the View interface.
	bankOffset uint16
}

// NewCPUView returns the view the CPU reads and writes through.
func NewCPUView(s *Space) *View {
	return &View{space: s}
}

// NewDLCView returns the view the display-list controller fetches through.
// It is independent of the CPU's view even though, absent banking, both
// currently resolve to the same bytes.
func NewDLCView(s *Space) *View {
	return &View{space: s}
}

// Read returns the byte at address.
func (v *View) Read(address uint16) (uint8, error) {
	return v.space.ram[address+v.bankOffset], nil
}

// Write stores data at address.
func (v *View) Write(address uint16, data uint8) error {
	v.space.ram[address+v.bankOffset] = data
	return nil
}

// Peek is a side-effect-free Read, for the (out-of-core) debugger
// collaborator.
func (v *View) Peek(address uint16) (uint8, error) {
	return v.Read(address)
}

// Poke is a side-effect-free Write, for the (out-of-core) debugger
// collaborator.
func (v *View) Poke(address uint16, value uint8) error {
	return v.Write(address, value)
}

// SetBank changes the bank offset applied to every subsequent access through
// this view. Unused by the core itself (banking is out of scope) but kept
// as the seam a cartridge/MMU layer would use.
func (v *View) SetBank(offset uint16) {
	v.bankOffset = offset
}
