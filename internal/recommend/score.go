package recommend

import (
	"math"
	"strings"
)

// defaultLevel is the scale midpoint substituted for unrated occupation
// attributes and interest dimensions.
const defaultLevel = 3

// Weights holds the policy constants of the fit score. They are heuristics,
// not fitted parameters; tune them here without touching Score.
type Weights struct {
	// Baseline keeps typical scores positive after penalties. Presentation
	// choice, not a probability.
	Baseline float64

	CoreMismatch    float64 // per-point penalty on data/tech/communication gaps
	ComfortMismatch float64 // per-point penalty on stability/salary gaps
	RemoteBonus     float64 // flat bonus when both sides allow remote work
	FocusBonus      float64 // flat bonus on a focus-area match

	InterestSim    float64 // multiplier on RIASEC cosine similarity
	EstimatedBlend float64 // weight of the estimated interest vector in the blend
	ExplicitBlend  float64 // weight of the explicit interest vector in the blend

	BucketFitBase float64 // added per aggregate bucket before subtracting the gap
	BucketScale   float64 // divisor taking 0-100 importances down to ~0-5

	GraduateZoneMin int     // job zone at or above which the bonus applies
	GraduateBonus   float64
}

func DefaultWeights() Weights {
	return Weights{
		Baseline:        10.0,
		CoreMismatch:    0.5,
		ComfortMismatch: 0.4,
		RemoteBonus:     2.5,
		FocusBonus:      3.5,
		InterestSim:     8.0,
		EstimatedBlend:  0.6,
		ExplicitBlend:   1.0,
		BucketFitBase:   5.0,
		BucketScale:     20.0,
		GraduateZoneMin: 4,
		GraduateBonus:   1.0,
	}
}

// Score computes the fit of one occupation for a profile. Higher is better.
// Pure: it never mutates its inputs and applies no rounding; rounding to
// presentation precision happens in the engine.
func Score(occ Occupation, p Profile, aggs map[string]Aggregate, w Weights) float64 {
	score := w.Baseline

	// Core requirement fit.
	score -= math.Abs(levelOr(occ.RequiredDataSkill)-p.DataPref) * w.CoreMismatch
	score -= math.Abs(levelOr(occ.RequiredTechInterest)-p.TechInterest) * w.CoreMismatch
	score -= math.Abs(levelOr(occ.RequiredCommunication)-p.Comm) * w.CoreMismatch

	// Stability and salary expectations.
	score -= math.Abs(levelOr(occ.StabilityLevel)-p.Stability) * w.ComfortMismatch
	score -= math.Abs(levelOr(occ.SalaryLevel)-p.Salary) * w.ComfortMismatch

	if p.Remote && occ.RemotePossible {
		score += w.RemoteBonus
	}

	if p.FocusPref != "" && occ.FocusArea != "" && strings.EqualFold(p.FocusPref, occ.FocusArea) {
		score += w.FocusBonus
	}

	score += Cosine(userInterestVector(p, w), occupationInterestVector(occ)) * w.InterestSim

	// Skill/knowledge bucket fit, rewarding closeness rather than
	// penalizing distance.
	agg := aggs[occ.SOCCode]
	score += w.BucketFitBase - math.Abs(bucketLevel(agg.DataSkills, w)-p.DataPref)
	score += w.BucketFitBase - math.Abs(bucketLevel(agg.PeopleSkills, w)-p.Comm)
	score += w.BucketFitBase - math.Abs(bucketLevel(agg.TechKnowledge, w)-p.TechInterest)
	score += w.BucketFitBase - math.Abs(bucketLevel(agg.BusinessKnowledge, w)-p.Stability)

	if occ.JobZone != nil && *occ.JobZone >= w.GraduateZoneMin {
		score += w.GraduateBonus
	}

	return score
}

// userInterestVector blends the estimated and explicit RIASEC vectors per
// dimension. When the explicit section is absent the estimated vector stands
// alone.
func userInterestVector(p Profile, w Weights) []*float64 {
	out := make([]*float64, len(p.Estimated))
	for i := range p.Estimated {
		v := p.Estimated[i]
		if p.Explicit != nil {
			v = p.Estimated[i]*w.EstimatedBlend + p.Explicit[i]*w.ExplicitBlend
		}
		out[i] = &v
	}
	return out
}

// occupationInterestVector assembles the six stored O*NET interest scores,
// substituting the midpoint for unrated dimensions. The stored scores are on
// a 0-100 scale while the user vectors are roughly 1-5; the mismatch is a
// known quirk, kept because rescaling would change the ranking.
func occupationInterestVector(occ Occupation) []*float64 {
	dims := [6]*float64{occ.RiasecR, occ.RiasecI, occ.RiasecA, occ.RiasecS, occ.RiasecE, occ.RiasecC}
	out := make([]*float64, len(dims))
	for i, d := range dims {
		v := float64(defaultLevel)
		if d != nil {
			v = *d
		}
		out[i] = &v
	}
	return out
}

func levelOr(v *int) float64 {
	if v == nil {
		return defaultLevel
	}
	return float64(*v)
}

func bucketLevel(v *float64, w Weights) float64 {
	if v == nil {
		return 0
	}
	return *v / w.BucketScale
}
