package onet

import "strings"

// Focus area labels assigned to catalog occupations. These must line up with
// the survey's role-choice answers for the focus-match bonus to fire.
const (
	FocusCybersecurity     = "cybersecurity"
	FocusDataAnalysis      = "data analysis"
	FocusTechnologyDesign  = "technology design"
	FocusSystemsManagement = "systems management"
)

// msisTitleKeywords marks occupation titles that belong in the catalog.
// "it " keeps its trailing space so it matches the word, not a substring.
var msisTitleKeywords = []string{
	"information systems",
	"information security",
	"cyber",
	"database",
	"network",
	"computer systems",
	"data scientist",
	"data analyst",
	"software",
	"cloud",
	"it ",
	"technology manager",
}

// msisSOCPrefixes are SOC groups kept regardless of title: computer
// occupations (15-12xx) and computer/IS managers (11-3021).
var msisSOCPrefixes = []string{"15-12", "11-3021"}

// IsCatalogRelevant reports whether an occupation is close enough to the
// MSIS field to belong in the catalog.
func IsCatalogRelevant(title, socCode string) bool {
	t := strings.ToLower(title)
	for _, kw := range msisTitleKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	for _, prefix := range msisSOCPrefixes {
		if strings.HasPrefix(socCode, prefix) {
			return true
		}
	}
	return false
}

// FocusAreaForTitle maps an occupation title into one of the survey's role
// categories. Order matters: security beats data beats design.
func FocusAreaForTitle(title string) string {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, "security", "cyber"):
		return FocusCybersecurity
	case containsAny(t, "data", "analytics", "business intelligence"):
		return FocusDataAnalysis
	case containsAny(t, "architect", "engineer", "developer", "designer"):
		return FocusTechnologyDesign
	default:
		return FocusSystemsManagement
	}
}

// RequirementLevels are the rough 1-5 attribute levels derived from an
// occupation title. Crude by design: O*NET has no per-occupation data for
// these survey-aligned dimensions, so the loader keys off title keywords.
type RequirementLevels struct {
	DataSkill     int
	TechInterest  int
	Communication int
	Stability     int
	Salary        int
	Remote        bool
}

// LevelsForTitle derives requirement levels from title keywords.
func LevelsForTitle(title string) RequirementLevels {
	t := strings.ToLower(title)
	levels := RequirementLevels{
		DataSkill:     3,
		TechInterest:  3,
		Communication: 3,
		Stability:     4,
		Salary:        4,
		Remote:        true,
	}

	if containsAny(t, "analyst", "data") {
		levels.DataSkill = 5
		if levels.TechInterest < 4 {
			levels.TechInterest = 4
		}
	}
	if containsAny(t, "security", "cyber") {
		levels.TechInterest = 5
		if levels.Stability < 4 {
			levels.Stability = 4
		}
	}
	if containsAny(t, "manager", "director", "lead", "project") {
		levels.Communication = 4
		levels.Salary = 5
	}
	if strings.Contains(t, "cloud") {
		levels.TechInterest = 5
	}

	return levels
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
