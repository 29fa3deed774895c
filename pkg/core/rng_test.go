package core

import (
	"slices"
	"testing"
)

func TestFillCenteredDeterministicAndBounded(t *testing.T) {
	a := make([]float32, 300)
	b := make([]float32, 300)
	NewRNG(7).FillCentered(a, 1000)
	NewRNG(7).FillCentered(b, 1000)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different sequences")
	}
	for i, v := range a {
		if v < -500 || v >= 500 {
			t.Fatalf("value %d = %v outside [-500, 500)", i, v)
		}
	}

	c := make([]float32, 300)
	NewRNG(8).FillCentered(c, 1000)
	if slices.Equal(a, c) {
		t.Fatal("different seeds produced identical sequences")
	}
}
