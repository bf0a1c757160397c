package recommend

// Sentinel answers for the two categorical survey questions.
const (
	AnswerTeam       = "team"
	AnswerStructured = "structured"
)

// Profile is the numeric user profile derived from one survey submission.
// Preference dimensions sit on the survey's 1-5 scale.
type Profile struct {
	DataPref     float64
	TechInterest float64
	Comm         float64
	Stability    float64
	Salary       float64
	Remote       bool
	FocusPref    string

	// Estimated is the RIASEC interest vector inferred from general survey
	// answers: (Realistic, Investigative, Artistic, Social, Enterprising,
	// Conventional).
	Estimated [6]float64

	// Explicit is the RIASEC vector taken verbatim from the dedicated
	// interest questions. Nil when the survey omitted that section; the
	// scorer then falls back to the estimated vector alone instead of
	// blending against fabricated answers.
	Explicit *[6]float64
}

// BuildProfile converts survey answers into a profile comparable against
// catalog occupations. Pure function of the payload.
func BuildProfile(s Survey) Profile {
	teamBoost := 3.0
	social := 3.0
	if s.Q5 == AnswerTeam {
		teamBoost = 5
		social = 5
	}
	conventional := 3.0
	if s.Q3 == AnswerStructured {
		conventional = 5
	}

	p := Profile{
		DataPref:     (float64(s.Q1) + float64(s.Q11)) / 2,
		TechInterest: (float64(s.Q2) + float64(s.Q4) + float64(s.Q12)) / 3,
		Comm:         (float64(s.Q13) + teamBoost) / 2,
		Stability:    float64(s.Q6),
		Salary:       float64(s.Q10),
		Remote:       s.Q9,
		FocusPref:    s.Q7,
		Estimated: [6]float64{
			float64(s.Q15), // Realistic: hands-on, applied tasks
			float64(s.Q1),  // Investigative: analytical problem solving
			3,              // Artistic: neutral, not measured by the survey
			social,         // Social: teamwork preference
			float64(s.Q14), // Enterprising: leadership confidence
			conventional,   // Conventional: preference for structured tasks
		},
	}

	if s.R1 != nil && s.I1 != nil && s.A1 != nil && s.S1 != nil && s.E1 != nil && s.C1 != nil {
		p.Explicit = &[6]float64{
			float64(*s.R1), float64(*s.I1), float64(*s.A1),
			float64(*s.S1), float64(*s.E1), float64(*s.C1),
		}
	}

	return p
}
