package recommend

import (
	"math"
	"testing"
)

func vec(vals ...float64) []*float64 {
	out := make([]*float64, len(vals))
	for i := range vals {
		v := vals[i]
		out[i] = &v
	}
	return out
}

func TestCosine_Symmetric(t *testing.T) {
	v1 := vec(1, 2, 3, 4, 5, 1)
	v2 := vec(5, 4, 3, 2, 1, 5)

	if got, want := Cosine(v1, v2), Cosine(v2, v1); got != want {
		t.Fatalf("expected symmetric similarity, got %v vs %v", got, want)
	}
}

func TestCosine_SelfSimilarityIsOne(t *testing.T) {
	v := vec(2, 3, 1, 5, 4, 2)

	got := Cosine(v, v)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected self similarity 1.0, got %v", got)
	}
}

func TestCosine_NilComponentYieldsZero(t *testing.T) {
	v1 := vec(1, 2, 3)
	v2 := vec(1, 2, 3)
	v2[1] = nil

	if got := Cosine(v1, v2); got != 0.0 {
		t.Fatalf("expected 0.0 for nil component, got %v", got)
	}
	if got := Cosine(v2, v1); got != 0.0 {
		t.Fatalf("expected 0.0 for nil component (swapped), got %v", got)
	}
}

func TestCosine_ZeroMagnitudeYieldsZero(t *testing.T) {
	zero := vec(0, 0, 0)
	v := vec(1, 2, 3)

	if got := Cosine(zero, v); got != 0.0 {
		t.Fatalf("expected 0.0 for zero-magnitude vector, got %v", got)
	}
	if got := Cosine(v, zero); got != 0.0 {
		t.Fatalf("expected 0.0 for zero-magnitude vector (swapped), got %v", got)
	}
}

func TestCosine_LengthMismatchYieldsZero(t *testing.T) {
	if got := Cosine(vec(1, 2), vec(1, 2, 3)); got != 0.0 {
		t.Fatalf("expected 0.0 for length mismatch, got %v", got)
	}
	if got := Cosine(nil, nil); got != 0.0 {
		t.Fatalf("expected 0.0 for empty vectors, got %v", got)
	}
}

func TestCosine_OppositeVectors(t *testing.T) {
	got := Cosine(vec(1, 0), vec(-1, 0))
	if math.Abs(got-(-1.0)) > 1e-9 {
		t.Fatalf("expected -1.0 for opposite vectors, got %v", got)
	}
}
