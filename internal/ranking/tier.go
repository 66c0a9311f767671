package ranking

import "math"

// Label is the qualitative grade attached to a sub-score.
type Label string

const (
	LabelHigh   Label = "High"
	LabelMedium Label = "Medium"
	LabelLow    Label = "Low"
)

// MatchTier is a scored, labelled outcome of a heuristic rule.
type MatchTier struct {
	Score float64 `json:"score"`
	Label Label   `json:"label"`
}

// tierRule pairs a predicate over a single measurement with the tier it yields.
type tierRule struct {
	applies func(v float64) bool
	tier    MatchTier
}

// evaluate returns the tier of the first rule whose predicate holds. Rule
// tables end with an otherwise() entry so the fallback is only reached by a
// malformed table.
func evaluate(rules []tierRule, v float64) MatchTier {
	for _, r := range rules {
		if r.applies(v) {
			return r.tier
		}
	}
	return MatchTier{Score: 0, Label: LabelLow}
}

func atMost(limit float64) func(float64) bool {
	return func(v float64) bool { return v <= limit }
}

func otherwise() func(float64) bool {
	return func(float64) bool { return true }
}

func tier(score float64, label Label) MatchTier {
	return MatchTier{Score: score, Label: label}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
