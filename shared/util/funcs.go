package util

// Wrap01 mantém v em [0, 1).
func Wrap01(v float32) float32 {
	for v >= 1 {
		v -= 1
	}
	for v < 0 {
		v += 1
	}
	return v
}
