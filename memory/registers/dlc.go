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

package registers

// DLCPageSize is the mirror period of the display-list controller's
// register page.
const DLCPageSize = 0x10

// DLC register offsets. DMACtrl/CharCtrl/CharBase/PMBase/HScroll/VScroll/
// NMIEnable/WSync are write-only from the CPU's perspective; VCount,
// LightPenH/V and NMIStatus are read-only.
const (
	DLCDListLo     = uint8(0x00)
	DLCDListHi     = uint8(0x01)
	DLCDMACtrl     = uint8(0x02)
	DLCCharCtrl     = uint8(0x03)
	DLCCharBase    = uint8(0x04)
	DLCWSync       = uint8(0x05)
	DLCPMBase      = uint8(0x06)
	DLCHScroll     = uint8(0x07)
	DLCVScroll     = uint8(0x08)
	DLCNMIEnable   = uint8(0x09)
	DLCNMIReset    = uint8(0x0A)
	DLCVCount      = uint8(0x0B) // read
	DLCLightPenH   = uint8(0x0C) // read
	DLCLightPenV   = uint8(0x0D) // read
	DLCNMIStatus   = uint8(0x0F) // read
)

// NMI mask bits, shared between NMIEnable (write) and NMIStatus (read).
const (
	NMIDisplayListInterrupt = uint8(0x80)
	NMIVerticalBlank        = uint8(0x40)
	NMIResetKey             = uint8(0x20)
)

// DLCWriteSymbols names every writable DLC offset, for diagnostics.
var DLCWriteSymbols = map[uint8]string{
	DLCDListLo:   "DLISTL",
	DLCDListHi:   "DLISTH",
	DLCDMACtrl:   "DMACTL",
	DLCCharCtrl:  "CHACTL",
	DLCCharBase:  "CHBASE",
	DLCWSync:     "WSYNC",
	DLCPMBase:    "PMBASE",
	DLCHScroll:   "HSCROL",
	DLCVScroll:   "VSCROL",
	DLCNMIEnable: "NMIEN",
	DLCNMIReset:  "NMIRES",
}

// DLCReadSymbols names every readable DLC offset, for diagnostics.
var DLCReadSymbols = map[uint8]string{
	DLCVCount:    "VCOUNT",
	DLCLightPenH: "PENH",
	DLCLightPenV: "PENV",
	DLCNMIStatus: "NMIST",
}
