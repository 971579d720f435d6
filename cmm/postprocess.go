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

package cmm

import (
	"github.com/thor8bit/chipcore/palette"
	"github.com/thor8bit/chipcore/postprocess"
)

// LoadPalette replaces the colour map EnablePostProcess's chain multiplies
// scanlines through. A load failure leaves the prior colour map (the
// embedded default, or whatever was last loaded successfully) in effect
// and is returned to the caller as an errors.ConfigurationFailure; it is
// never fatal to core state.
func (c *CMM) LoadPalette(path string) error {
	pal, err := palette.LoadFile(path)
	if err != nil {
		return err
	}
	c.pal = pal
	if c.pp != nil {
		c.pp = postprocess.NewProcessor(c.ppChain, c.pal, c.ppWidth, c.ppHeight)
	}
	return nil
}

// EnablePostProcess turns on packed-RGB output: TriggerScanline's raw
// palette indices are no longer the end of the line, PostProcess carries
// them through chain against the loaded colour map. Passing postprocess.None
// still runs every scanline through the colour map with no blending.
func (c *CMM) EnablePostProcess(chain postprocess.Chain, width, height int) {
	c.ppChain, c.ppWidth, c.ppHeight = chain, width, height
	c.pp = postprocess.NewProcessor(chain, c.pal, width, height)
}

// DisablePostProcess reverts to raw palette-index output: PostProcess
// returns nil until EnablePostProcess is called again.
func (c *CMM) DisablePostProcess() {
	c.pp = nil
}

// PostProcess carries one scanline's worth of TriggerScanline output
// through the configured colour map and blend chain. It returns nil when
// no postprocessor is configured, a sink that wants packed RGB must call
// EnablePostProcess first.
func (c *CMM) PostProcess(raw []uint8) []postprocess.PackedRGB {
	if c.pp == nil {
		return nil
	}
	return c.pp.Apply(raw)
}

// VBI resets the postprocessor's frame-history state at vertical blank,
// matching the reference postprocessor's own VBIAction hook.
func (c *CMM) VBI() {
	if c.pp != nil {
		c.pp.VBI()
	}
}
