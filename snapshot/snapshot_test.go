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

package snapshot

import (
	"testing"

	"github.com/thor8bit/chipcore/errors"
)

func TestUint8RoundTrip(t *testing.T) {
	sn := New()
	sn.SetUint8("GraCtl", 0x07)
	if got := sn.GetUint8("GraCtl"); got != 0x07 {
		t.Fatalf("GetUint8 = %#02x, want 0x07", got)
	}
}

func TestUint16RoundTrip(t *testing.T) {
	sn := New()
	sn.SetUint16("ProgramCounter", 0xbeef)
	if got := sn.GetUint16("ProgramCounter"); got != 0xbeef {
		t.Fatalf("GetUint16 = %#04x, want 0xbeef", got)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	sn := New()
	sn.SetBool("Speaker", true)
	if !sn.GetBool("Speaker") {
		t.Fatal("GetBool = false, want true")
	}
}

func TestMissingFieldReadsZeroValue(t *testing.T) {
	sn := New()
	if got := sn.GetUint8("Nope"); got != 0 {
		t.Fatalf("GetUint8 on absent field = %d, want 0", got)
	}
	if sn.Has("Nope") {
		t.Fatal("Has(absent field) = true, want false")
	}
}

func TestValidateReportsMissingField(t *testing.T) {
	sn := New()
	sn.SetUint8("Prior", 0x40)
	err := Validate(sn, []string{"Prior", "GraCtl"})
	if !errors.Is(err, errors.ConfigurationFailure) {
		t.Fatalf("Validate err = %v, want a configuration failure", err)
	}
}

func TestValidatePassesWhenAllFieldsPresent(t *testing.T) {
	sn := New()
	sn.SetUint8("Prior", 0x40)
	sn.SetUint8("GraCtl", 0x03)
	if err := Validate(sn, []string{"Prior", "GraCtl"}); err != nil {
		t.Fatalf("Validate err = %v, want nil", err)
	}
}
