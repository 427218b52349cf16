// MLX90614 I2C infrared thermometer reading (SMBus read-word protocol).
package mlx90614

import (
	"errors"

	"tinygo.org/x/drivers"
)

// DefaultAddress is the factory-programmed bus address.
const DefaultAddress = 0x5A

// RAM registers, linearized temperatures in units of 0.02 K.
const (
	regAmbient = 0x06
	regObject  = 0x07
)

// The sensor raises the MSB of the data word when the measurement is
// invalid.
var ErrInvalidReading = errors.New("mlx90614: invalid reading")

type Device struct {
	bus     drivers.I2C
	Address uint16
}

func New(bus drivers.I2C, address uint16) Device {
	return Device{bus: bus, Address: address}
}

// Connected reports whether a sensor answers at the device address.
func (d *Device) Connected() bool {
	_, err := d.readWord(regObject)
	return err == nil
}

// ReadObjectTemperature returns the object (IR) temperature in
// milli-degrees Celsius.
func (d *Device) ReadObjectTemperature() (int32, error) {
	return d.readTemperature(regObject)
}

// ReadAmbientTemperature returns the die temperature in milli-degrees
// Celsius.
func (d *Device) ReadAmbientTemperature() (int32, error) {
	return d.readTemperature(regAmbient)
}

func (d *Device) readTemperature(reg uint8) (int32, error) {
	raw, err := d.readWord(reg)
	if err != nil {
		return 0, err
	}
	// raw counts are 0.02 K each.
	return int32(raw)*20 - 273150, nil
}

// readWord runs one SMBus read-word transaction: command byte out,
// LSB + MSB + PEC back.
func (d *Device) readWord(reg uint8) (uint16, error) {
	data := make([]byte, 3)
	if err := d.bus.Tx(d.Address, []byte{reg}, data); err != nil {
		return 0, err
	}
	if data[1]&0x80 != 0 {
		return 0, ErrInvalidReading
	}
	return uint16(data[0]) | uint16(data[1])<<8, nil
}
