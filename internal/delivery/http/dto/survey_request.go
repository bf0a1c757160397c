package dto

import (
	"fmt"
	"strings"

	"github.com/Cohenad10/grad-major-api/internal/recommend"
)

// SurveySubmitRequest is the wire shape of one survey submission. Scalar
// answers are pointers so a missing field is distinguishable from a zero.
type SurveySubmitRequest struct {
	Q1  *int    `json:"q1"`
	Q2  *int    `json:"q2"`
	Q3  *string `json:"q3"`
	Q4  *int    `json:"q4"`
	Q5  *string `json:"q5"`
	Q6  *int    `json:"q6"`
	Q7  *string `json:"q7"`
	Q8  *int    `json:"q8"`
	Q9  *bool   `json:"q9"`
	Q10 *int    `json:"q10"`
	Q11 *int    `json:"q11"`
	Q12 *int    `json:"q12"`
	Q13 *int    `json:"q13"`
	Q14 *int    `json:"q14"`
	Q15 *int    `json:"q15"`

	// Optional RIASEC self-rating section.
	R1 *int `json:"r1"`
	I1 *int `json:"i1"`
	A1 *int `json:"a1"`
	S1 *int `json:"s1"`
	E1 *int `json:"e1"`
	C1 *int `json:"c1"`
}

const (
	taskPrefStructured  = "structured"
	taskPrefFlexible    = "flexible"
	workPrefTeam        = "team"
	workPrefIndependent = "independent"
)

// Validate returns one message per invalid field, empty when the payload is
// well formed. The engine never re-validates, so everything range-checked
// here is trusted downstream.
func (r SurveySubmitRequest) Validate() []string {
	var problems []string

	scale := func(name string, v *int) {
		if v == nil {
			problems = append(problems, name+" is required")
			return
		}
		if *v < 1 || *v > 5 {
			problems = append(problems, fmt.Sprintf("%s must be between 1 and 5", name))
		}
	}

	scale("q1", r.Q1)
	scale("q2", r.Q2)

	if r.Q3 == nil {
		problems = append(problems, "q3 is required")
	} else if v := strings.ToLower(strings.TrimSpace(*r.Q3)); v != taskPrefStructured && v != taskPrefFlexible {
		problems = append(problems, "q3 must be structured or flexible")
	}

	scale("q4", r.Q4)

	if r.Q5 == nil {
		problems = append(problems, "q5 is required")
	} else if v := strings.ToLower(strings.TrimSpace(*r.Q5)); v != workPrefTeam && v != workPrefIndependent {
		problems = append(problems, "q5 must be team or independent")
	}

	scale("q6", r.Q6)

	if r.Q7 == nil || strings.TrimSpace(*r.Q7) == "" {
		problems = append(problems, "q7 is required")
	}

	scale("q8", r.Q8)

	if r.Q9 == nil {
		problems = append(problems, "q9 is required")
	}

	scale("q10", r.Q10)
	scale("q11", r.Q11)
	scale("q12", r.Q12)
	scale("q13", r.Q13)
	scale("q14", r.Q14)
	scale("q15", r.Q15)

	optScale := func(name string, v *int) {
		if v != nil && (*v < 1 || *v > 5) {
			problems = append(problems, fmt.Sprintf("%s must be between 1 and 5", name))
		}
	}
	optScale("r1", r.R1)
	optScale("i1", r.I1)
	optScale("a1", r.A1)
	optScale("s1", r.S1)
	optScale("e1", r.E1)
	optScale("c1", r.C1)

	return problems
}

// ToSurvey converts a validated request. Calling it on an unvalidated
// request panics on missing fields, which is intentional.
func (r SurveySubmitRequest) ToSurvey() recommend.Survey {
	return recommend.Survey{
		Q1:  *r.Q1,
		Q2:  *r.Q2,
		Q3:  strings.ToLower(strings.TrimSpace(*r.Q3)),
		Q4:  *r.Q4,
		Q5:  strings.ToLower(strings.TrimSpace(*r.Q5)),
		Q6:  *r.Q6,
		Q7:  strings.ToLower(strings.TrimSpace(*r.Q7)),
		Q8:  *r.Q8,
		Q9:  *r.Q9,
		Q10: *r.Q10,
		Q11: *r.Q11,
		Q12: *r.Q12,
		Q13: *r.Q13,
		Q14: *r.Q14,
		Q15: *r.Q15,

		R1: r.R1,
		I1: r.I1,
		A1: r.A1,
		S1: r.S1,
		E1: r.E1,
		C1: r.C1,
	}
}
