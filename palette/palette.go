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

// Package palette supplies the 256-entry colour map the postprocess
// package's true-colour chain multiplies a scanline of palette indices
// through. It is not a video encoder: producing the exact analogue
// hue/luma values a real composite monitor would show is out of core
// scope, so Default is a reasonable approximation rather than a
// calibrated reproduction, and LoadFile exists only to let a host
// substitute its own calibrated table.
package palette

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/thor8bit/chipcore/errors"
	"github.com/thor8bit/chipcore/postprocess"
)

// Size is the number of entries a colour map must have: sixteen hues
// (hue 0 is always a grey ramp) at sixteen luminance levels each,
// matching the colour byte's own four-bit hue/four-bit luminance split.
const Size = 256

// Default returns an embedded colour map built from a fixed hue/luminance
// model, not a calibrated reproduction of any particular television
// standard: sixteen luminance steps per hue, hue 0 desaturated to a grey
// ramp. It never fails and is what ColdStart wires in before any LoadFile
// call.
func Default() [Size]postprocess.PackedRGB {
	var out [Size]postprocess.PackedRGB
	for hue := 0; hue < 16; hue++ {
		for lum := 0; lum < 16; lum++ {
			out[hue<<4|lum] = entry(hue, lum)
		}
	}
	return out
}

// entry synthesises one packed colour from a hue/luminance pair using a
// simple sine-phased model; the packing order (alpha high byte, then red,
// green, blue) matches postprocess.PackedRGB's own reference layout.
func entry(hue, lum int) postprocess.PackedRGB {
	y := float64(lum) / 15
	if hue == 0 {
		v := uint8(y * 255)
		return pack(0xff, v, v, v)
	}

	phase := 2 * math.Pi * float64(hue-1) / 15
	chroma := 0.45
	r := clamp(y + chroma*math.Cos(phase))
	g := clamp(y + chroma*math.Cos(phase-2*math.Pi/3))
	b := clamp(y + chroma*math.Cos(phase+2*math.Pi/3))
	return pack(0xff, r, g, b)
}

func clamp(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v * 255)
}

func pack(a, r, g, b uint8) postprocess.PackedRGB {
	return postprocess.PackedRGB(a)<<24 | postprocess.PackedRGB(r)<<16 |
		postprocess.PackedRGB(g)<<8 | postprocess.PackedRGB(b)
}

// LoadFile reads a 256-line colour map, one entry per line as three
// whitespace-separated 8-bit decimal or 0x-prefixed hex channel values
// ("red green blue"), in palette-index order. A missing file, a short
// file or a malformed line is a configuration failure: the caller is
// expected to keep using whatever colour map was already in effect,
// not to substitute Default itself.
func LoadFile(path string) ([Size]postprocess.PackedRGB, error) {
	var out [Size]postprocess.PackedRGB

	f, err := os.Open(path)
	if err != nil {
		return out, errors.Errorf(errors.ConfigurationFailure, "%v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() && n < Size {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return out, errors.Errorf(errors.ConfigurationFailure, "%s: line %d: want 3 channel values, got %d", path, n+1, len(fields))
		}

		var rgb [3]uint8
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 0, 8)
			if err != nil {
				return out, errors.Errorf(errors.ConfigurationFailure, "%s: line %d: %v", path, n+1, err)
			}
			rgb[i] = uint8(v)
		}
		out[n] = pack(0xff, rgb[0], rgb[1], rgb[2])
		n++
	}
	if err := sc.Err(); err != nil {
		return out, errors.Errorf(errors.ConfigurationFailure, "%s: %v", path, err)
	}
	if n != Size {
		return out, errors.Errorf(errors.ConfigurationFailure, "%s: want %d entries, got %d", path, Size, n)
	}

	return out, nil
}
