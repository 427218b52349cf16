package mlx90614

import (
	"errors"
	"testing"
)

// fakeBus answers every transaction with a fixed 3-byte word.
type fakeBus struct {
	addr uint16
	reg  byte
	resp [3]byte
	err  error
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.addr = addr
	if len(w) > 0 {
		f.reg = w[0]
	}
	if f.err != nil {
		return f.err
	}
	copy(r, f.resp[:])
	return nil
}

func TestReadObjectTemperature(t *testing.T) {
	tests := []struct {
		name string
		resp [3]byte // LSB, MSB, PEC
		want int32   // milli-degC
	}{
		// 0x399A = 14746 counts * 0.02 K = 294.92 K = 21.77 degC.
		{"room temperature", [3]byte{0x9A, 0x39, 0x00}, 21770},
		// 0x3365 = 13157 counts -> 263.14 K = -10.01 degC.
		{"below freezing", [3]byte{0x65, 0x33, 0x00}, -10010},
		// 0 counts -> 0 K.
		{"absolute zero", [3]byte{0x00, 0x00, 0x00}, -273150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &fakeBus{resp: tt.resp}
			d := New(bus, DefaultAddress)

			got, err := d.ReadObjectTemperature()
			if err != nil {
				t.Fatalf("ReadObjectTemperature: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadObjectTemperature = %d; want %d", got, tt.want)
			}
			if bus.reg != regObject {
				t.Errorf("register = %#02x; want %#02x", bus.reg, regObject)
			}
			if bus.addr != DefaultAddress {
				t.Errorf("address = %#02x; want %#02x", bus.addr, DefaultAddress)
			}
		})
	}
}

func TestReadAmbientTemperature(t *testing.T) {
	bus := &fakeBus{resp: [3]byte{0x9A, 0x39, 0x00}}
	d := New(bus, DefaultAddress)

	if _, err := d.ReadAmbientTemperature(); err != nil {
		t.Fatalf("ReadAmbientTemperature: %v", err)
	}
	if bus.reg != regAmbient {
		t.Errorf("register = %#02x; want %#02x", bus.reg, regAmbient)
	}
}

func TestErrorFlag(t *testing.T) {
	// MSB bit 7 marks an invalid measurement.
	bus := &fakeBus{resp: [3]byte{0x00, 0x80, 0x00}}
	d := New(bus, DefaultAddress)

	if _, err := d.ReadObjectTemperature(); !errors.Is(err, ErrInvalidReading) {
		t.Errorf("err = %v; want ErrInvalidReading", err)
	}
}

func TestBusError(t *testing.T) {
	busErr := errors.New("i2c timeout")
	bus := &fakeBus{err: busErr}
	d := New(bus, 0x5C)

	if _, err := d.ReadObjectTemperature(); !errors.Is(err, busErr) {
		t.Errorf("err = %v; want bus error", err)
	}
	if d.Connected() {
		t.Error("Connected = true; want false")
	}
	if bus.addr != 0x5C {
		t.Errorf("address = %#02x; want 0x5C", bus.addr)
	}
}

func TestConnected(t *testing.T) {
	bus := &fakeBus{resp: [3]byte{0x9A, 0x39, 0x00}}
	d := New(bus, DefaultAddress)
	if !d.Connected() {
		t.Error("Connected = false; want true")
	}
}
