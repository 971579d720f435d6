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

// Package snapshot implements the labelled-dictionary save/restore format:
// a flat set of named fields, each chip's own Save/Load pair populating or
// consuming it by name rather than by struct layout, so the format survives
// a field being added, removed or reordered inside a chip's own state.
package snapshot

import "github.com/thor8bit/chipcore/errors"

// Snapshot is a named bag of register-sized values. Each chip defines its
// own field names (DLC.Save/Load, CMM.Save/Load); Snapshot itself has no
// notion of which fields "belong" to which chip.
type Snapshot struct {
	fields map[string]uint64
}

// New returns an empty Snapshot, ready for a chip's Save method to fill.
func New() *Snapshot {
	return &Snapshot{fields: make(map[string]uint64)}
}

// SetUint8 stores an 8-bit field.
func (s *Snapshot) SetUint8(name string, v uint8) {
	s.fields[name] = uint64(v)
}

// GetUint8 returns an 8-bit field, or 0 if the field is absent.
func (s *Snapshot) GetUint8(name string) uint8 {
	return uint8(s.fields[name])
}

// SetUint16 stores a 16-bit field.
func (s *Snapshot) SetUint16(name string, v uint16) {
	s.fields[name] = uint64(v)
}

// GetUint16 returns a 16-bit field, or 0 if the field is absent.
func (s *Snapshot) GetUint16(name string) uint16 {
	return uint16(s.fields[name])
}

// SetBool stores a boolean field.
func (s *Snapshot) SetBool(name string, v bool) {
	if v {
		s.fields[name] = 1
		return
	}
	s.fields[name] = 0
}

// GetBool returns a boolean field, or false if the field is absent.
func (s *Snapshot) GetBool(name string) bool {
	return s.fields[name] != 0
}

// Has reports whether name was ever set, distinguishing a field that is
// genuinely absent (e.g. a snapshot taken by an older field set) from one
// whose value happens to be the zero value.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Names returns every field name currently set, for diagnostics and the
// round-trip test; order is unspecified.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.fields))
	for n := range s.fields {
		names = append(names, n)
	}
	return names
}

// Validate checks that every name in want is present; a snapshot missing a
// field a chip's Load expects is a configuration failure, not a panic.
func Validate(s *Snapshot, want []string) error {
	for _, name := range want {
		if !s.Has(name) {
			return errors.Errorf(errors.ConfigurationFailure, "snapshot: missing field %q", name)
		}
	}
	return nil
}
