//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/ridichi14/Temperatura-sol-si-aer/internal/mlx90614"
	"github.com/ridichi14/Temperatura-sol-si-aer/internal/soil"
)

var (
	soilADC    machine.ADC
	batteryADC machine.ADC

	irSensor mlx90614.Device
	irOK     bool
)

// initSensors powers the measurement rails, configures the ADC inputs
// and probes the IR thermometer. A missing IR sensor is not fatal; the
// node falls back to the default temperature.
func initSensors() {
	sensorPowerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	sensorPowerPin.High()
	probePowerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	probePowerPin.High()

	machine.InitADC()
	soilADC = machine.ADC{Pin: soilPin}
	soilADC.Configure(machine.ADCConfig{})
	batteryADC = machine.ADC{Pin: batteryPin}
	batteryADC.Configure(machine.ADCConfig{})

	machine.I2C1.Configure(machine.I2CConfig{
		SCL: machine.I2C1_SCL_PIN,
		SDA: machine.I2C1_SDA_PIN,
	})

	for _, addr := range irAddresses {
		for attempt := 0; attempt < irProbeRetries; attempt++ {
			d := mlx90614.New(machine.I2C1, addr)
			if d.Connected() {
				irSensor = d
				irOK = true
				println("init: mlx90614 found at address", addr)
				return
			}
			time.Sleep(irProbeDelay)
		}
		println("init: no mlx90614 at address", addr)
	}
	println("init: ir sensor unavailable, default temperature will be reported")
}

// readSoilPercent averages five spaced probe readings and maps them
// onto the calibrated 0..100 % range.
func readSoilPercent() float64 {
	var samples [soilSampleCount]uint16
	for i := range samples {
		samples[i] = soilADC.Get()
		if i < len(samples)-1 {
			time.Sleep(soilSampleSpacing)
		}
	}
	avg := soil.Average(samples[:])
	return soil.Percent(avg, soilRawDry, soilRawWet)
}

// readObjectTempC returns the IR object temperature in degC. ok is
// false when the sensor is absent or the read fails.
func readObjectTempC() (tempC float64, ok bool) {
	if !irOK {
		return 0, false
	}
	milliC, err := irSensor.ReadObjectTemperature()
	if err != nil {
		println("sense: mlx90614 read failed:", err.Error())
		return 0, false
	}
	return float64(milliC) / 1000, true
}

// readBatteryVolts reads the divider tap and scales back to pack volts.
func readBatteryVolts() float64 {
	raw := batteryADC.Get()
	return float64(raw) / 65535 * adcReferenceVolts * batteryDividerRatio
}
