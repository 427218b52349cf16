// Soil moisture calibration: raw capacitive probe counts to percent.
package soil

// Average returns the integer mean of the raw ADC samples.
// Returns 0 for an empty slice.
func Average(samples []uint16) uint16 {
	if len(samples) == 0 {
		return 0
	}
	var sum uint32
	for _, s := range samples {
		sum += uint32(s)
	}
	return uint16(sum / uint32(len(samples)))
}

// Percent maps a raw reading onto 0..100 % using the dry/wet calibration
// points. A capacitive probe reads high when dry, so dry > wet. Readings
// at or above dry map to 0, at or below wet map to 100, linear in
// between, clamped to [0,100].
func Percent(raw, dry, wet uint16) float64 {
	if raw >= dry {
		return 0
	}
	if raw <= wet {
		return 100
	}
	span := float64(dry) - float64(wet)
	return float64(dry-raw) / span * 100
}
