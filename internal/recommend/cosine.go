package recommend

import "math"

// Cosine returns the cosine similarity of two equal-length vectors.
// A nil component in either vector, or a zero-magnitude vector, makes the
// similarity uninformative; those cases yield 0 instead of an error so that
// scoring never stalls on sparse interest data.
func Cosine(v1, v2 []*float64) float64 {
	if len(v1) == 0 || len(v1) != len(v2) {
		return 0
	}
	for i := range v1 {
		if v1[i] == nil || v2[i] == nil {
			return 0
		}
	}

	var dot, sq1, sq2 float64
	for i := range v1 {
		a, b := *v1[i], *v2[i]
		dot += a * b
		sq1 += a * a
		sq2 += b * b
	}

	if sq1 == 0 || sq2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(sq1) * math.Sqrt(sq2))
}
