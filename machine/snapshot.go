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

import "github.com/thor8bit/chipcore/snapshot"

// Save returns a new Snapshot holding both chips' state. Save/restore
// itself is a collaborator out of core scope (no on-disk encoding is
// implemented here); this is the in-memory dictionary that collaborator
// would serialize.
func (m *Machine) Save() *snapshot.Snapshot {
	sn := snapshot.New()
	m.dlc.Save(sn)
	m.cmm.Save(sn)
	return sn
}

// Load restores both chips' state from a Snapshot previously returned by
// Save. It does not reset the cycle cursor: a snapshot is restored between
// lines, the same assumption the reference implementation's own
// load-state path makes (state is only ever loaded between frames, never
// mid-scanline).
func (m *Machine) Load(sn *snapshot.Snapshot) {
	m.dlc.Load(sn)
	m.cmm.Load(sn)
}
