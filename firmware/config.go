//go:build tinygo

package main

import (
	"machine"
	"time"
)

// Board wiring (STM32WL node, SX1262 on the Sub-GHz SPI).
const (
	sensorPowerPin = machine.PB12 // IR sensor rail
	probePowerPin  = machine.PB5  // soil probe rail
	soilPin        = machine.PB3  // capacitive probe output
	batteryPin     = machine.PB4  // 1:2 battery divider tap
)

// MLX90614 candidate bus addresses; factory default first.
var irAddresses = [2]uint16{0x5A, 0x5C}

const (
	irProbeRetries = 3
	irProbeDelay   = 100 * time.Millisecond
)

// Soil probe calibration, raw 16-bit ADC counts. The probe reads high
// in open air and low in water.
const (
	soilRawDry uint16 = 52000
	soilRawWet uint16 = 21000

	soilSampleCount   = 5
	soilSampleSpacing = 50 * time.Millisecond
)

// Battery sense: Vbat = Vadc * 2, 3.3 V reference, 16-bit reading.
const (
	batteryDividerRatio = 2.0
	adcReferenceVolts   = 3.3
)

// Cadence of the main loop activities.
const (
	joinRetryInterval = 120 * time.Second
	sendInterval      = 60 * time.Second
	statusInterval    = 30 * time.Second
	loopTick          = 100 * time.Millisecond
)

// OTAA credentials, MSB first, as provisioned on the network server.
// Replace before flashing.
var (
	devEUI = []uint8{0x70, 0xB3, 0xD5, 0x7E, 0xD0, 0x00, 0x00, 0x01}
	appEUI = []uint8{0x70, 0xB3, 0xD5, 0x7E, 0xD0, 0x00, 0x00, 0x02}
	appKey = []uint8{
		0x2B, 0x7E, 0x15, 0x16, 0x28, 0xAE, 0xD2, 0xA6,
		0xAB, 0xF7, 0x15, 0x88, 0x09, 0xCF, 0x4F, 0x3C,
	}
)
