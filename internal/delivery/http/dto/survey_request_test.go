package dto

import (
	"strings"
	"testing"
)

func iptr(v int) *int       { return &v }
func sptr(v string) *string { return &v }
func bptr(v bool) *bool     { return &v }

func validRequest() SurveySubmitRequest {
	return SurveySubmitRequest{
		Q1: iptr(4), Q2: iptr(3), Q3: sptr("structured"), Q4: iptr(5), Q5: sptr("team"),
		Q6: iptr(2), Q7: sptr("data analysis"), Q8: iptr(3), Q9: bptr(true), Q10: iptr(4),
		Q11: iptr(2), Q12: iptr(4), Q13: iptr(3), Q14: iptr(5), Q15: iptr(1),
	}
}

func TestValidate_OK(t *testing.T) {
	if problems := validRequest().Validate(); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	req := validRequest()
	req.Q7 = nil
	req.Q9 = nil

	problems := req.Validate()
	if len(problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", problems)
	}
}

func TestValidate_OutOfRange(t *testing.T) {
	req := validRequest()
	req.Q1 = iptr(0)
	req.Q15 = iptr(6)

	problems := req.Validate()
	if len(problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", problems)
	}
}

func TestValidate_EnumFields(t *testing.T) {
	req := validRequest()
	req.Q3 = sptr("chaotic")
	if problems := req.Validate(); len(problems) != 1 || !strings.Contains(problems[0], "q3") {
		t.Fatalf("expected q3 problem, got %v", problems)
	}

	req = validRequest()
	req.Q5 = sptr("solo")
	if problems := req.Validate(); len(problems) != 1 || !strings.Contains(problems[0], "q5") {
		t.Fatalf("expected q5 problem, got %v", problems)
	}

	// Enum answers are case-insensitive and trimmed.
	req = validRequest()
	req.Q3 = sptr("  Flexible ")
	req.Q5 = sptr("INDEPENDENT")
	if problems := req.Validate(); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestValidate_OptionalInterestSection(t *testing.T) {
	req := validRequest()
	if problems := req.Validate(); len(problems) != 0 {
		t.Fatalf("absent section should validate, got %v", problems)
	}

	req.R1 = iptr(3)
	req.C1 = iptr(7)
	problems := req.Validate()
	if len(problems) != 1 || !strings.Contains(problems[0], "c1") {
		t.Fatalf("expected c1 problem, got %v", problems)
	}
}

func TestToSurvey_NormalizesEnums(t *testing.T) {
	req := validRequest()
	req.Q3 = sptr(" Flexible ")
	req.Q5 = sptr("Team")
	req.Q7 = sptr("  Cybersecurity ")

	s := req.ToSurvey()
	if s.Q3 != "flexible" {
		t.Fatalf("q3 not normalized: %q", s.Q3)
	}
	if s.Q5 != "team" {
		t.Fatalf("q5 not normalized: %q", s.Q5)
	}
	if s.Q7 != "cybersecurity" {
		t.Fatalf("q7 not normalized: %q", s.Q7)
	}
}

func TestToSurvey_CarriesInterestSection(t *testing.T) {
	req := validRequest()
	req.R1, req.I1, req.A1 = iptr(5), iptr(4), iptr(1)
	req.S1, req.E1, req.C1 = iptr(2), iptr(3), iptr(4)

	s := req.ToSurvey()
	if s.R1 == nil || *s.R1 != 5 || s.C1 == nil || *s.C1 != 4 {
		t.Fatalf("interest section not carried: %+v", s)
	}
}
