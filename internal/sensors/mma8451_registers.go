// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

// MMA8451 register map (subset used by the dial reader).
const (
	regOutXMSB    = 0x01 // X, Y, Z as MSB/LSB pairs, 14-bit left aligned
	regWhoAmI     = 0x0D
	regXYZDataCfg = 0x0E // FS[1:0]: 0=±2g, 1=±4g, 2=±8g
	regCtrlReg1   = 0x2A // DR[5:3], ACTIVE[0]
	regCtrlReg2   = 0x2B // MODS[1:0]

	whoAmIMMA8451 = 0x1A

	ctrlReg1Standby = 0x00
	ctrlReg1Active  = 0x01
	dataRate100Hz   = 0x03 << 3
	ctrlReg2HighRes = 0x02
)

// countsPerG is the 14-bit sensitivity for each XYZ_DATA_CFG range.
var countsPerG = [...]float64{4096, 2048, 1024}

// standardGravity converts g to m/s².
const standardGravity = 9.80665
