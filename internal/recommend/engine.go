package recommend

import (
	"math"
	"sort"
)

const (
	// DefaultTopN is the number of occupation matches returned unless
	// configured otherwise.
	DefaultTopN = 5

	// DefaultMajor is recommended when the focus preference maps to nothing
	// specific, and for the empty-catalog degenerate case.
	DefaultMajor = "MS in Information Systems"
)

// Engine runs the full recommendation pipeline over an immutable catalog
// snapshot. Stateless and reentrant: concurrent calls share nothing but the
// configuration.
type Engine struct {
	weights Weights
	topN    int
}

func NewEngine(weights Weights, topN int) *Engine {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Engine{weights: weights, topN: topN}
}

// Recommendation is the final result: a graduate major and the ranked top
// occupation matches.
type Recommendation struct {
	RecommendedMajor string
	TopJobs          []JobMatch
}

// JobMatch is one ranked occupation with its fit score rounded to three
// decimals.
type JobMatch struct {
	Title       string
	SOCCode     string
	Score       float64
	FocusArea   string
	Description string
	JobZone     *int
}

type scoredOccupation struct {
	score float64
	occ   Occupation
}

// Recommend scores every occupation in catalog order, deduplicates by SOC
// code, ranks by score, and truncates to the configured top N. An empty
// catalog is a defined degenerate case, not an error.
func (e *Engine) Recommend(s Survey, catalog []Occupation, aggs map[string]Aggregate) Recommendation {
	profile := BuildProfile(s)

	if len(catalog) == 0 {
		return Recommendation{RecommendedMajor: DefaultMajor, TopJobs: []JobMatch{}}
	}

	scored := make([]scoredOccupation, 0, len(catalog))
	for _, occ := range catalog {
		scored = append(scored, scoredOccupation{
			score: Score(occ, profile, aggs, e.weights),
			occ:   occ,
		})
	}

	// The loader may insert the same SOC code more than once. First
	// occurrence wins, even over a higher-scoring later duplicate: catalog
	// order, not score, decides which copy survives.
	seen := make(map[string]struct{}, len(scored))
	deduped := make([]scoredOccupation, 0, len(scored))
	for _, sc := range scored {
		if _, ok := seen[sc.occ.SOCCode]; ok {
			continue
		}
		seen[sc.occ.SOCCode] = struct{}{}
		deduped = append(deduped, sc)
	}

	// Stable so that ties keep catalog order.
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].score > deduped[j].score
	})

	if len(deduped) > e.topN {
		deduped = deduped[:e.topN]
	}

	top := make([]JobMatch, 0, len(deduped))
	for _, sc := range deduped {
		top = append(top, JobMatch{
			Title:       sc.occ.Title,
			SOCCode:     sc.occ.SOCCode,
			Score:       round3(sc.score),
			FocusArea:   sc.occ.FocusArea,
			Description: sc.occ.Description,
			JobZone:     sc.occ.JobZone,
		})
	}

	return Recommendation{
		RecommendedMajor: MajorForFocus(profile.FocusPref),
		TopJobs:          top,
	}
}

// MajorForFocus maps a stated focus preference to the recommended graduate
// major. Total: unrecognized or empty preferences get the default.
func MajorForFocus(focusPref string) string {
	switch focusPref {
	case "data analysis":
		return "MS in Data Analytics"
	case "cybersecurity":
		return "MS in Cybersecurity"
	case "technology design":
		return "MS in Software Engineering / IT"
	default:
		return DefaultMajor
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
