package noise

// fbmScales and fbmWeights implement a fractal-brownian-motion
// combinator: 5 octaves at doubling scales, with decreasing weight.
var (
	fbmScales  = [5]float32{1, 2, 4, 8, 16}
	fbmWeights = [5]float32{0.5, 0.4, 0.3, 0.2, 0.1}
)

// FBM returns the weighted sum of 5 noise octaves at (x, y), each octave
// reading a distinct channel of s so they don't correlate.
func FBM(s *Source, x, y float32) float32 {
	var total float32
	for i, scale := range fbmScales {
		total += fbmWeights[i] * s.Noise2D(x*scale, y*scale, i)
	}
	return total
}

// Mix linearly interpolates between a and b by t.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}
