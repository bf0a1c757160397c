package recommend

import (
	"math"
	"testing"
)

func matchedOccupation() Occupation {
	return Occupation{
		SOCCode:               "15-1212.00",
		Title:                 "Information Security Analysts",
		FocusArea:             "cybersecurity",
		RequiredDataSkill:     ptrInt(3),
		RequiredTechInterest:  ptrInt(5),
		RequiredCommunication: ptrInt(3),
		StabilityLevel:        ptrInt(4),
		SalaryLevel:           ptrInt(4),
		RemotePossible:        true,
		JobZone:               ptrInt(4),
	}
}

func cyberProfileSurvey() Survey {
	s := baseSurvey()
	s.Q7 = "cybersecurity"
	s.Q9 = true
	return s
}

func TestScore_Deterministic(t *testing.T) {
	occ := matchedOccupation()
	p := BuildProfile(cyberProfileSurvey())
	aggs := map[string]Aggregate{occ.SOCCode: {DataSkills: fptr(60), TechKnowledge: fptr(80)}}
	w := DefaultWeights()

	first := Score(occ, p, aggs, w)
	second := Score(occ, p, aggs, w)
	if first != second {
		t.Fatalf("expected identical scores for identical inputs, got %v vs %v", first, second)
	}

	// The shared aggregate map must come back untouched.
	a := aggs[occ.SOCCode]
	if a.DataSkills == nil || *a.DataSkills != 60 || a.TechKnowledge == nil || *a.TechKnowledge != 80 {
		t.Fatalf("expected aggregate map unmutated, got %+v", a)
	}
	if a.PeopleSkills != nil || a.BusinessKnowledge != nil {
		t.Fatalf("expected absent buckets to stay absent, got %+v", a)
	}
}

func TestScore_RemoteAndFocusBonusesAreAdditive(t *testing.T) {
	p := BuildProfile(cyberProfileSurvey())
	w := DefaultWeights()
	aggs := map[string]Aggregate{}

	with := matchedOccupation()
	without := matchedOccupation()
	without.RemotePossible = false
	without.FocusArea = "systems management"

	diff := Score(with, p, aggs, w) - Score(without, p, aggs, w)
	if math.Abs(diff-(w.RemoteBonus+w.FocusBonus)) > 1e-9 {
		t.Fatalf("expected bonus delta %v, got %v", w.RemoteBonus+w.FocusBonus, diff)
	}
}

func TestScore_FocusMatchIsCaseInsensitive(t *testing.T) {
	p := BuildProfile(cyberProfileSurvey())
	w := DefaultWeights()

	lower := matchedOccupation()
	upper := matchedOccupation()
	upper.FocusArea = "CyberSecurity"

	if Score(lower, p, nil, w) != Score(upper, p, nil, w) {
		t.Fatalf("expected case-insensitive focus match")
	}
}

func TestScore_MissingLevelsDefaultToMidpoint(t *testing.T) {
	p := BuildProfile(cyberProfileSurvey())
	w := DefaultWeights()

	unrated := matchedOccupation()
	unrated.RequiredDataSkill = nil
	unrated.RequiredTechInterest = nil
	unrated.RequiredCommunication = nil
	unrated.StabilityLevel = nil
	unrated.SalaryLevel = nil

	rated := matchedOccupation()
	rated.RequiredDataSkill = ptrInt(3)
	rated.RequiredTechInterest = ptrInt(3)
	rated.RequiredCommunication = ptrInt(3)
	rated.StabilityLevel = ptrInt(3)
	rated.SalaryLevel = ptrInt(3)

	if Score(unrated, p, nil, w) != Score(rated, p, nil, w) {
		t.Fatalf("expected nil levels to score as midpoint 3")
	}
}

func TestScore_JobZoneBonus(t *testing.T) {
	p := BuildProfile(cyberProfileSurvey())
	w := DefaultWeights()

	graduate := matchedOccupation()
	graduate.JobZone = ptrInt(4)
	entry := matchedOccupation()
	entry.JobZone = ptrInt(3)
	unknown := matchedOccupation()
	unknown.JobZone = nil

	diff := Score(graduate, p, nil, w) - Score(entry, p, nil, w)
	if math.Abs(diff-w.GraduateBonus) > 1e-9 {
		t.Fatalf("expected job zone bonus %v, got %v", w.GraduateBonus, diff)
	}
	if Score(unknown, p, nil, w) != Score(entry, p, nil, w) {
		t.Fatalf("expected nil job zone to earn no bonus")
	}
}

func TestScore_ExplicitInterestSectionShiftsScore(t *testing.T) {
	w := DefaultWeights()
	occ := matchedOccupation()
	occ.RiasecR = fptr(80)
	occ.RiasecI = fptr(90)
	occ.RiasecA = fptr(10)
	occ.RiasecS = fptr(20)
	occ.RiasecE = fptr(30)
	occ.RiasecC = fptr(40)

	estimatedOnly := BuildProfile(cyberProfileSurvey())

	s := cyberProfileSurvey()
	s.R1, s.I1, s.A1 = ptrInt(5), ptrInt(5), ptrInt(1)
	s.S1, s.E1, s.C1 = ptrInt(1), ptrInt(1), ptrInt(1)
	blended := BuildProfile(s)

	if Score(occ, estimatedOnly, nil, w) == Score(occ, blended, nil, w) {
		t.Fatalf("expected explicit interest answers to change the score")
	}
}

func TestScore_BucketFitRewardsCloseness(t *testing.T) {
	p := BuildProfile(cyberProfileSurvey())
	w := DefaultWeights()
	occ := matchedOccupation()

	// data_pref is 3; a 60-importance bucket normalizes to exactly 3.
	close := map[string]Aggregate{occ.SOCCode: {DataSkills: fptr(60)}}
	far := map[string]Aggregate{occ.SOCCode: {DataSkills: fptr(100)}}

	if Score(occ, p, close, w) <= Score(occ, p, far, w) {
		t.Fatalf("expected closer bucket to score higher")
	}

	// An absent bucket scores as zero, i.e. distance data_pref from 0.
	none := map[string]Aggregate{}
	diff := Score(occ, p, close, w) - Score(occ, p, none, w)
	if math.Abs(diff-p.DataPref) > 1e-9 {
		t.Fatalf("expected absent-bucket delta %v, got %v", p.DataPref, diff)
	}
}

func TestScore_BonusFloorForFullMatch(t *testing.T) {
	// Baseline + remote bonus + focus bonus must survive even before the
	// similarity and bucket terms, given zero penalty gaps.
	w := DefaultWeights()
	p := Profile{
		DataPref: 3, TechInterest: 5, Comm: 3, Stability: 4, Salary: 4,
		Remote: true, FocusPref: "cybersecurity",
		Estimated: [6]float64{3, 3, 3, 3, 3, 3},
	}
	occ := matchedOccupation()

	got := Score(occ, p, nil, w)
	floor := w.Baseline + w.RemoteBonus + w.FocusBonus
	if got < floor {
		t.Fatalf("expected score >= %v for a fully matched occupation, got %v", floor, got)
	}
}
