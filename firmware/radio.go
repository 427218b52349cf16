//go:build tinygo

package main

import (
	"encoding/hex"
	"errors"
	"machine"

	"tinygo.org/x/drivers/lora/lorawan"
	"tinygo.org/x/drivers/lora/lorawan/region"
	"tinygo.org/x/drivers/sx126x"
)

var (
	loraRadio *sx126x.Device
	session   = &lorawan.Session{}
	otaa      = &lorawan.Otaa{}
)

// initRadio brings up the SX1262 on the Sub-GHz SPI, attaches it to the
// LoRaWAN stack and installs the OTAA credentials.
func initRadio() error {
	loraRadio = sx126x.New(machine.SPI3)
	loraRadio.SetDeviceType(sx126x.DEVICE_TYPE_SX1262)
	loraRadio.SetRadioController(sx126x.NewRadioControl())

	if !loraRadio.DetectDevice() {
		return errors.New("sx126x not detected")
	}

	lorawan.UseRegionSettings(region.EU868())
	lorawan.UseRadio(loraRadio)

	if err := otaa.SetDevEUI(devEUI); err != nil {
		return err
	}
	if err := otaa.SetAppEUI(appEUI); err != nil {
		return err
	}
	if err := otaa.SetAppKey(appKey); err != nil {
		return err
	}

	println("radio: sx1262 ready, deveui", hex.EncodeToString(devEUI))
	return nil
}

// serviceRadio polls the radio event flags once per loop pass. There is
// no asynchronous IRQ handler; the loop is the only execution context.
func serviceRadio() {
	loraRadio.HandleInterrupt()
}

// joinNetwork runs one blocking OTAA join attempt.
func joinNetwork() error {
	return lorawan.Join(otaa, session)
}

// sendUplink transmits one unconfirmed uplink frame.
func sendUplink(data []byte) error {
	return lorawan.SendUplink(data, session)
}
