// Object temperature validation for the IR thermometer reading.
package objtemp

// DefaultC is reported when no trustworthy reading is available.
const DefaultC = 25.0

// Sensor readings outside this open interval are treated as glitches.
const (
	minValidC = -40.0
	maxValidC = 85.0
)

// Sanitize returns the reading when the sensor is present and the value
// is inside (-40, 85) degC, otherwise the fixed default.
func Sanitize(tempC float64, sensorOK bool) float64 {
	if !sensorOK {
		return DefaultC
	}
	if tempC <= minValidC || tempC >= maxValidC {
		return DefaultC
	}
	return tempC
}
