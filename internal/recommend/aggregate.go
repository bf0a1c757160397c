package recommend

import "strings"

// Keyword sets routing O*NET element names into the four aggregate buckets.
// Matching is a case-insensitive substring test. These are policy constants:
// adjust the lists, not the aggregation.
var (
	DataSkillKeywords         = []string{"analysis", "mathematics", "critical thinking", "complex problem solving"}
	PeopleSkillKeywords       = []string{"active listening", "speaking", "coordination", "social"}
	TechKnowledgeKeywords     = []string{"computer", "electronics"}
	BusinessKnowledgeKeywords = []string{"administration", "management", "business"}
)

// Aggregate summarizes one occupation's skill and knowledge rows into four
// interpretable buckets, each the mean importance of the matching elements.
// A nil bucket means no element matched; the scorer treats it as zero after
// normalization.
type Aggregate struct {
	DataSkills        *float64
	PeopleSkills      *float64
	TechKnowledge     *float64
	BusinessKnowledge *float64
}

// BuildAggregates reduces the full skill and knowledge tables into
// per-SOC-code buckets. Stateless and order-independent: permuting the input
// records yields identical buckets. Callers may cache the result; it only
// promises to reflect the tables as passed in.
func BuildAggregates(skills, knowledge []ElementRecord) map[string]Aggregate {
	out := make(map[string]Aggregate)

	for code, v := range meanByCode(skills, DataSkillKeywords) {
		a := out[code]
		a.DataSkills = fptr(v)
		out[code] = a
	}
	for code, v := range meanByCode(skills, PeopleSkillKeywords) {
		a := out[code]
		a.PeopleSkills = fptr(v)
		out[code] = a
	}
	for code, v := range meanByCode(knowledge, TechKnowledgeKeywords) {
		a := out[code]
		a.TechKnowledge = fptr(v)
		out[code] = a
	}
	for code, v := range meanByCode(knowledge, BusinessKnowledgeKeywords) {
		a := out[code]
		a.BusinessKnowledge = fptr(v)
		out[code] = a
	}

	return out
}

func meanByCode(records []ElementRecord, keywords []string) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Importance == nil {
			continue
		}
		if !matchesAny(rec.Name, keywords) {
			continue
		}
		sums[rec.SOCCode] += *rec.Importance
		counts[rec.SOCCode]++
	}

	out := make(map[string]float64, len(sums))
	for code, sum := range sums {
		out[code] = sum / float64(counts[code])
	}
	return out
}

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
