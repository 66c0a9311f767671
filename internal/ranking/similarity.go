package ranking

import "math"

// CosineSimilarity returns the cosine of the angle between a and b. Vectors of
// different length, empty vectors and zero-norm vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// semanticBoost is the additive bonus for a given similarity.
func semanticBoost(similarity float64) float64 {
	switch {
	case similarity > 0.8:
		return 0.05
	case similarity > 0.7:
		return 0.03
	default:
		return 0
	}
}

func finiteVector(v []float32) bool {
	for _, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
