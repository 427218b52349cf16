// Uplink payload format (big-endian): soil moisture pct*100 uint16,
// object temperature degC*100 int16, battery volts*100 uint16 (6 bytes total).
package payload

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Size is the fixed uplink payload length in bytes.
const Size = 6

// Sample is one measurement cycle in engineering units.
type Sample struct {
	SoilPercent  float64 // 0..100
	ObjectTempC  float64 // may be negative
	BatteryVolts float64
}

// Encode packs the sample into the fixed wire layout. Values are scaled
// by 100 and rounded to the nearest hundredth before truncation to 16
// bits. Callers are expected to pass in-range values (soil already
// clamped, temperature already sanitized).
func Encode(s Sample) [Size]byte {
	var buf [Size]byte
	binary.BigEndian.PutUint16(buf[0:2], uint16(math.Round(s.SoilPercent*100)))
	binary.BigEndian.PutUint16(buf[2:4], uint16(int16(math.Round(s.ObjectTempC*100))))
	binary.BigEndian.PutUint16(buf[4:6], uint16(math.Round(s.BatteryVolts*100)))
	return buf
}

// String renders the sample the way the firmware logs it.
func (s Sample) String() string {
	return fmt.Sprintf("soil=%.2f%% temp=%.2fC batt=%.2fV",
		s.SoilPercent, s.ObjectTempC, s.BatteryVolts)
}

// Decode parses a payload back into engineering units.
// Returns an error if the payload is not exactly Size bytes.
func Decode(data []byte) (Sample, error) {
	if len(data) != Size {
		return Sample{}, fmt.Errorf("payload length %d, want %d", len(data), Size)
	}
	return Sample{
		SoilPercent:  float64(binary.BigEndian.Uint16(data[0:2])) / 100,
		ObjectTempC:  float64(int16(binary.BigEndian.Uint16(data[2:4]))) / 100,
		BatteryVolts: float64(binary.BigEndian.Uint16(data[4:6])) / 100,
	}, nil
}
