package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// RequireSliceAllClose fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance). Matching infinities of the
// same sign compare equal, so reciprocal-of-zero results can be asserted
// directly.
func RequireSliceAllClose(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.IsInf(got[i], 0) || math.IsInf(want[i], 0) {
			if got[i] != want[i] {
				t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
			}
			continue
		}
		if !scalar.EqualWithinAbs(got[i], want[i], eps) {
			diff := math.Abs(got[i] - want[i])
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireEmptyNonNil fails t unless data is an allocated slice of length zero.
func RequireEmptyNonNil(t *testing.T, data []float64) {
	t.Helper()
	if data == nil {
		t.Fatal("got nil slice, want allocated empty slice")
	}
	if len(data) != 0 {
		t.Fatalf("got length %d, want 0", len(data))
	}
}
