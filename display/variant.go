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

package display

// Variant identifies one of the eleven display-generator combinations
// (spec.md §4.6).
type Variant int

const (
	Mode00Unfiddled Variant = iota
	Mode00Fiddled
	Mode00FiddledArtefacted
	Mode40Unfiddled
	Mode40Fiddled
	Mode80Unfiddled
	Mode80Fiddled
	ModeC0Unfiddled
	ModeC0Fiddled
	StrangeUnfiddled
	StrangeFiddled
)

func (v Variant) String() string {
	switch v {
	case Mode00Unfiddled:
		return "00-unfiddled"
	case Mode00Fiddled:
		return "00-fiddled"
	case Mode00FiddledArtefacted:
		return "00-fiddled-artefacted"
	case Mode40Unfiddled:
		return "40-unfiddled"
	case Mode40Fiddled:
		return "40-fiddled"
	case Mode80Unfiddled:
		return "80-unfiddled"
	case Mode80Fiddled:
		return "80-fiddled"
	case ModeC0Unfiddled:
		return "c0-unfiddled"
	case ModeC0Fiddled:
		return "c0-fiddled"
	case StrangeUnfiddled:
		return "strange-unfiddled"
	case StrangeFiddled:
		return "strange-fiddled"
	default:
		return "unknown"
	}
}

// Select picks the variant active for the rest of a scanline, given the
// current priority-control value, whether colour fiddling and artefacting
// are active, whether the chip generation provides the processed modes at
// all, and initialPrior — the OR-accumulation of every priority-control
// value seen so far this line (spec.md §4.6's mid-line tie-break: a
// processed mode turned off mid-line falls into the strange mode rather
// than reverting to unprocessed). Ported without structural change from
// the reference chip's mode-pick switch.
func Select(priorCtrl uint8, fiddled, artefacting, hasProcessedModes bool, initialPrior uint8) Variant {
	mode := priorCtrl & 0xc0
	if !hasProcessedModes {
		mode = 0x00
	}

	switch mode {
	case 0x40:
		if fiddled {
			return Mode40Fiddled
		}
		return Mode40Unfiddled
	case 0x80:
		if fiddled {
			return Mode80Fiddled
		}
		return Mode80Unfiddled
	case 0xc0:
		if fiddled {
			return ModeC0Fiddled
		}
		return ModeC0Unfiddled
	default:
		if initialPrior&0xc0 != 0 {
			if fiddled {
				return StrangeFiddled
			}
			return StrangeUnfiddled
		}
		if fiddled {
			if artefacting {
				return Mode00FiddledArtefacted
			}
			return Mode00Fiddled
		}
		return Mode00Unfiddled
	}
}

// AccumulateInitialPrior folds a priority-control value into the line's
// running "initial priority". The CMM calls it on every priority-control
// write, so that Select can detect a processed mode was active earlier in
// the line; at the start of each scanline the CMM seeds the value from the
// processed-mode bits then in force.
func AccumulateInitialPrior(initialPrior, priorCtrl uint8) uint8 {
	return initialPrior | priorCtrl
}
