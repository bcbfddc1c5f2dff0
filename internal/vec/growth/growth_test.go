package growth

import (
	"math"
	"testing"
)

// TestNextDoubles tests the doubling policy including the empty case.
func TestNextDoubles(t *testing.T) {
	tests := []struct {
		old  int
		want int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{4, 8},
		{5, 10},
		{1024, 2048},
	}

	for _, tt := range tests {
		got, ok := Next[int64](tt.old)
		if !ok {
			t.Errorf("Next(%d) ok = false, want true", tt.old)
		}
		if got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.old, got, tt.want)
		}
	}
}

// TestNextClampsToMax tests that growth near the limit clamps instead of overflowing.
func TestNextClampsToMax(t *testing.T) {
	limit := Max[int64]()

	got, ok := Next[int64](limit/2 + 1)
	if !ok || got != limit {
		t.Errorf("Next(limit/2+1) = (%d, %v), want (%d, true)", got, ok, limit)
	}

	got, ok = Next[int64](limit)
	if ok {
		t.Errorf("Next(limit) = (%d, true), want ok = false", got)
	}
}

// TestMax tests the per-type limits.
func TestMax(t *testing.T) {
	if got := Max[struct{}](); got != math.MaxInt {
		t.Errorf("Max[struct{}]() = %d, want MaxInt", got)
	}

	byteMax := Max[byte]()
	if got := Max[int64](); got != byteMax/8 {
		t.Errorf("Max[int64]() = %d, want %d", got, byteMax/8)
	}
}

// TestFits tests capacity validation bounds.
func TestFits(t *testing.T) {
	if Fits[int](-1) {
		t.Error("Fits(-1) = true, want false")
	}
	if !Fits[int](0) {
		t.Error("Fits(0) = false, want true")
	}
	if !Fits[int](Max[int]()) {
		t.Error("Fits(Max) = false, want true")
	}
	if Fits[int](Max[int]() + 1) {
		t.Error("Fits(Max+1) = true, want false")
	}
}
