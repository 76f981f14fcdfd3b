package utils

// JitterCoordinate сдвигает опорную координату на spread*r, где r из [0, 1).
// Используется как заглушка геокодинга, когда координаты не переданы.
func JitterCoordinate(base, spread float64, r func() float64) float64 {
	return base + r()*spread
}
