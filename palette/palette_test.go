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

package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thor8bit/chipcore/errors"
)

func TestDefaultIsFullyOpaqueAndGreyRampAtHueZero(t *testing.T) {
	p := Default()
	for i, v := range p {
		if v&0xff000000 != 0xff000000 {
			t.Fatalf("p[%d] alpha channel = %#x, want fully opaque", i, v)
		}
	}
	for lum := 0; lum < 16; lum++ {
		v := p[lum]
		r := uint8(v >> 16)
		g := uint8(v >> 8)
		b := uint8(v)
		if r != g || g != b {
			t.Fatalf("hue 0 lum %d = (%d,%d,%d), want a grey ramp", lum, r, g, b)
		}
	}
}

func TestDefaultLuminanceIncreasesWithinAHue(t *testing.T) {
	p := Default()
	var prev uint8
	for lum := 0; lum < 16; lum++ {
		v := uint8(p[lum])
		if lum > 0 && v < prev {
			t.Fatalf("lum %d blue channel = %d, want >= %d (previous step)", lum, v, prev)
		}
		prev = v
	}
}

func TestLoadFileMissingIsConfigurationFailure(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if !errors.Is(err, errors.ConfigurationFailure) {
		t.Fatalf("err = %v, want a configuration failure", err)
	}
}

func TestLoadFileShortIsConfigurationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("255 0 0\n0 255 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if !errors.Is(err, errors.ConfigurationFailure) {
		t.Fatalf("err = %v, want a configuration failure", err)
	}
}

func TestLoadFileMalformedLineIsConfigurationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "malformed.txt")
	lines := make([]byte, 0, Size*8)
	for i := 0; i < Size; i++ {
		if i == 17 {
			lines = append(lines, []byte("not-a-colour\n")...)
			continue
		}
		lines = append(lines, []byte("1 2 3\n")...)
	}
	if err := os.WriteFile(path, lines, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if !errors.Is(err, errors.ConfigurationFailure) {
		t.Fatalf("err = %v, want a configuration failure", err)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colours.txt")
	var buf []byte
	for i := 0; i < Size; i++ {
		buf = append(buf, []byte("# comment lines and blanks are skipped\n\n")...)
		buf = append(buf, []byte("10 20 30\n")...)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := pack(0xff, 10, 20, 30)
	for i, v := range got {
		if v != want {
			t.Fatalf("got[%d] = %#x, want %#x", i, v, want)
		}
	}
}
