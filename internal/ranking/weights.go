package ranking

import (
	"math"

	"go.uber.org/zap"
)

// Weights controls how the four sub-scores contribute to the total.
type Weights struct {
	Skills     float64 `json:"skills" mapstructure:"skills"`
	Experience float64 `json:"experience" mapstructure:"experience"`
	Domain     float64 `json:"domain" mapstructure:"domain"`
	Education  float64 `json:"education" mapstructure:"education"`
}

// DefaultWeights is 40% skills, 30% experience, 20% domain, 10% education.
func DefaultWeights() Weights {
	return Weights{Skills: 0.4, Experience: 0.3, Domain: 0.2, Education: 0.1}
}

const (
	weightTolerance = 1e-9
	// Sums closer to 1 than this are rounding noise and are rescaled silently.
	weightWarnTolerance = 0.01
)

func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Domain + w.Education
}

// Normalized returns w scaled to sum to 1 and whether scaling was needed.
// Negative components count as zero. A zero or non-finite sum falls back to
// DefaultWeights.
func (w Weights) Normalized() (Weights, bool) {
	w = Weights{
		Skills:     math.Max(w.Skills, 0),
		Experience: math.Max(w.Experience, 0),
		Domain:     math.Max(w.Domain, 0),
		Education:  math.Max(w.Education, 0),
	}

	sum := w.Sum()
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return DefaultWeights(), true
	}
	if math.Abs(sum-1) <= weightTolerance {
		return w, false
	}

	return Weights{
		Skills:     w.Skills / sum,
		Experience: w.Experience / sum,
		Domain:     w.Domain / sum,
		Education:  w.Education / sum,
	}, true
}

func normalizeWeights(w Weights, log *zap.Logger) Weights {
	normalized, changed := w.Normalized()
	if changed && (math.Abs(w.Sum()-1) > weightWarnTolerance || math.IsNaN(w.Sum())) {
		log.Warn("ranking weights do not sum to 1.0, normalizing",
			zap.Float64("sum", w.Sum()),
			zap.Float64("skills", normalized.Skills),
			zap.Float64("experience", normalized.Experience),
			zap.Float64("domain", normalized.Domain),
			zap.Float64("education", normalized.Education),
		)
	}
	return normalized
}
