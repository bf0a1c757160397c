package recommend

// Occupation is one read-only catalog record, populated by the O*NET loader.
// Requirement levels are on a 1-5 scale and nil when the loader could not
// derive them; the scorer substitutes the scale midpoint.
type Occupation struct {
	SOCCode     string
	Title       string
	Description string
	FocusArea   string

	RequiredDataSkill     *int
	RequiredTechInterest  *int
	RequiredCommunication *int
	StabilityLevel        *int
	SalaryLevel           *int
	RemotePossible        bool

	// JobZone is the O*NET education/experience tier, 1-5.
	JobZone *int

	// RIASEC interest scores from O*NET on a 0-100 scale, nil when unrated.
	RiasecR *float64
	RiasecI *float64
	RiasecA *float64
	RiasecS *float64
	RiasecE *float64
	RiasecC *float64
}

// ElementRecord is one row of the job_skills or job_knowledge table: a named
// O*NET element with its importance for one occupation. Importance is on a
// 0-100 scale and nil rows are skipped during aggregation.
type ElementRecord struct {
	SOCCode    string
	Name       string
	Importance *float64
}

// Survey is one validated survey submission. Type and range validation is the
// caller's job; the engine assumes well-formed answers.
type Survey struct {
	Q1  int    // comfort with data analysis
	Q2  int    // comfort with technology
	Q3  string // "structured" or "flexible" task preference
	Q4  int    // interest in emerging tech
	Q5  string // "team" or "independent" work preference
	Q6  int    // importance of job stability
	Q7  string // preferred focus area
	Q8  int
	Q9  bool // wants remote work
	Q10 int  // importance of salary
	Q11 int  // analytical problem solving
	Q12 int  // tech self-rating
	Q13 int  // communication self-rating
	Q14 int  // leadership and project confidence
	Q15 int  // interest in hands-on, applied tasks

	// Optional direct RIASEC self-ratings. The explicit interest vector is
	// built only when all six are present.
	R1 *int
	I1 *int
	A1 *int
	S1 *int
	E1 *int
	C1 *int
}

func fptr(v float64) *float64 {
	return &v
}
