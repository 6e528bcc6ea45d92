package state

import "math"

// Snap rounds value to the nearest multiple of pitch, ties rounding up.
// The remainder is taken with floored modulo so negative values round the
// same way as positive ones. Snap is idempotent. A pitch of zero or less is
// rejected at configuration time; here it leaves value unchanged.
func Snap(value, pitch float64) float64 {
	if pitch <= 0 || math.IsNaN(pitch) || math.IsInf(pitch, 0) {
		return value
	}
	q := math.Floor(value / pitch)
	r := value - q*pitch
	if r >= pitch/2 {
		q++
	}
	return q * pitch
}
