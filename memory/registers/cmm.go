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

// Package registers holds the memory-mapped register offset constants for
// the DLC and the CMM, mirrored within their respective chip pages: every
// 32 bytes for the CMM, every 16 bytes for the DLC.
package registers

// CMMPageSize is the mirror period of the colour-merger's register page.
const CMMPageSize = 0x20

// CMM write-side register offsets (0x00-0x1F).
const (
	CMMPlayer0HPos = uint8(0x00)
	CMMPlayer1HPos = uint8(0x01)
	CMMPlayer2HPos = uint8(0x02)
	CMMPlayer3HPos = uint8(0x03)
	CMMMissile0HPos = uint8(0x04)
	CMMMissile1HPos = uint8(0x05)
	CMMMissile2HPos = uint8(0x06)
	CMMMissile3HPos = uint8(0x07)
	CMMPlayer0Size = uint8(0x08)
	CMMPlayer1Size = uint8(0x09)
	CMMPlayer2Size = uint8(0x0A)
	CMMPlayer3Size = uint8(0x0B)
	CMMMissileSize = uint8(0x0C)
	CMMPlayer0Graphics = uint8(0x0D)
	CMMPlayer1Graphics = uint8(0x0E)
	CMMPlayer2Graphics = uint8(0x0F)
	CMMPlayer3Graphics = uint8(0x10)
	CMMMissileGraphics = uint8(0x11)
	CMMPlayer0Color = uint8(0x12)
	CMMPlayer1Color = uint8(0x13)
	CMMPlayer2Color = uint8(0x14)
	CMMPlayer3Color = uint8(0x15)
	CMMPlayfield0Color = uint8(0x16)
	CMMPlayfield1Color = uint8(0x17)
	CMMPlayfield2Color = uint8(0x18)
	CMMPlayfield3Color = uint8(0x19)
	CMMBackgroundColor = uint8(0x1A)
	CMMPriorityControl = uint8(0x1B)
	CMMVerticalDelay = uint8(0x1C)
	CMMGraphicsControl = uint8(0x1D)
	CMMHitClear = uint8(0x1E)
	CMMConsoleOutput = uint8(0x1F)
)

// CMM read-side register offsets (0x00-0x1F). Several offsets carry
// different meanings on read versus write.
const (
	CMMMissilePFCollision0 = uint8(0x00)
	CMMMissilePFCollision1 = uint8(0x01)
	CMMMissilePFCollision2 = uint8(0x02)
	CMMMissilePFCollision3 = uint8(0x03)
	CMMPlayerPFCollision0 = uint8(0x04)
	CMMPlayerPFCollision1 = uint8(0x05)
	CMMPlayerPFCollision2 = uint8(0x06)
	CMMPlayerPFCollision3 = uint8(0x07)
	CMMMissilePLCollision0 = uint8(0x08)
	CMMMissilePLCollision1 = uint8(0x09)
	CMMMissilePLCollision2 = uint8(0x0A)
	CMMMissilePLCollision3 = uint8(0x0B)
	CMMPlayerPLCollision = uint8(0x0C)
	CMMTrigger0 = uint8(0x0D)
	CMMTrigger1 = uint8(0x0E)
	CMMTrigger2 = uint8(0x0F)
	CMMTrigger3 = uint8(0x10)
	CMMConsoleSwitches = uint8(0x1F)
)

// CMMWriteSymbols names every writable CMM offset, for diagnostics.
var CMMWriteSymbols = map[uint8]string{
	CMMPlayer0HPos:     "HPOSP0",
	CMMPlayer1HPos:     "HPOSP1",
	CMMPlayer2HPos:     "HPOSP2",
	CMMPlayer3HPos:     "HPOSP3",
	CMMMissile0HPos:    "HPOSM0",
	CMMMissile1HPos:    "HPOSM1",
	CMMMissile2HPos:    "HPOSM2",
	CMMMissile3HPos:    "HPOSM3",
	CMMPlayer0Size:     "SIZEP0",
	CMMPlayer1Size:     "SIZEP1",
	CMMPlayer2Size:     "SIZEP2",
	CMMPlayer3Size:     "SIZEP3",
	CMMMissileSize:     "SIZEM",
	CMMPlayer0Graphics: "GRP0",
	CMMPlayer1Graphics: "GRP1",
	CMMPlayer2Graphics: "GRP2",
	CMMPlayer3Graphics: "GRP3",
	CMMMissileGraphics: "GRPM",
	CMMPlayer0Color:    "COLPM0",
	CMMPlayer1Color:    "COLPM1",
	CMMPlayer2Color:    "COLPM2",
	CMMPlayer3Color:    "COLPM3",
	CMMPlayfield0Color: "COLPF0",
	CMMPlayfield1Color: "COLPF1",
	CMMPlayfield2Color: "COLPF2",
	CMMPlayfield3Color: "COLPF3",
	CMMBackgroundColor: "COLBK",
	CMMPriorityControl: "PRIOR",
	CMMVerticalDelay:   "VDELAY",
	CMMGraphicsControl: "GRACTL",
	CMMHitClear:        "HITCLR",
	CMMConsoleOutput:   "CONSOL",
}

// CMMReadSymbols names every readable CMM offset, for diagnostics.
var CMMReadSymbols = map[uint8]string{
	CMMMissilePFCollision0: "M0PF",
	CMMMissilePFCollision1: "M1PF",
	CMMMissilePFCollision2: "M2PF",
	CMMMissilePFCollision3: "M3PF",
	CMMPlayerPFCollision0:  "P0PF",
	CMMPlayerPFCollision1:  "P1PF",
	CMMPlayerPFCollision2:  "P2PF",
	CMMPlayerPFCollision3:  "P3PF",
	CMMMissilePLCollision0: "M0PL",
	CMMMissilePLCollision1: "M1PL",
	CMMMissilePLCollision2: "M2PL",
	CMMMissilePLCollision3: "M3PL",
	CMMPlayerPLCollision:   "PLPL",
	CMMTrigger0:            "TRIG0",
	CMMTrigger1:            "TRIG1",
	CMMTrigger2:            "TRIG2",
	CMMTrigger3:            "TRIG3",
	CMMConsoleSwitches:     "CONSOL",
}
