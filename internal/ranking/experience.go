package ranking

import "math"

// Experience tiers. The step boundaries are preserved from the system this
// scorer replaced; callers should not infer meaning from the exact values.
var (
	// Candidate inside [min, max].
	withinRangeTier = tier(1.0, LabelHigh)

	// Below the minimum when the role has a ceiling, keyed by the gap.
	cappedUnderRules = []tierRule{
		{applies: atMost(1), tier: tier(0.8, LabelMedium)},
		{applies: atMost(2), tier: tier(0.6, LabelMedium)},
		{applies: otherwise(), tier: tier(0.3, LabelLow)},
	}

	// Above the ceiling, keyed by the excess.
	cappedOverRules = []tierRule{
		{applies: atMost(2), tier: tier(0.9, LabelHigh)},
		{applies: atMost(5), tier: tier(0.7, LabelMedium)},
		{applies: otherwise(), tier: tier(0.5, LabelMedium)},
	}

	// At or above the minimum with no ceiling, keyed by the excess.
	openOverRules = []tierRule{
		{applies: atMost(2), tier: tier(1.0, LabelHigh)},
		{applies: atMost(5), tier: tier(0.9, LabelHigh)},
		{applies: otherwise(), tier: tier(0.8, LabelHigh)},
	}

	// Below the minimum with no ceiling, keyed by the gap.
	openUnderRules = []tierRule{
		{applies: atMost(0.5), tier: tier(0.8, LabelMedium)},
		{applies: atMost(1), tier: tier(0.6, LabelMedium)},
		{applies: atMost(2), tier: tier(0.4, LabelLow)},
		{applies: otherwise(), tier: tier(0.2, LabelLow)},
	}
)

// scoreExperience tiers candidate years against the job's range. A ceiling of
// zero or less counts as no ceiling.
func scoreExperience(years, minYears float64, maxYears *float64) MatchTier {
	years = math.Max(years, 0)
	minYears = math.Max(minYears, 0)

	if maxYears == nil || *maxYears <= 0 {
		if years >= minYears {
			return evaluate(openOverRules, years-minYears)
		}
		return evaluate(openUnderRules, minYears-years)
	}

	hi := *maxYears
	switch {
	case years < minYears:
		return evaluate(cappedUnderRules, minYears-years)
	case years > hi:
		return evaluate(cappedOverRules, years-hi)
	default:
		return withinRangeTier
	}
}
