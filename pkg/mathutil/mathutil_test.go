package mathutil

import "testing"

func TestClampInt(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{0, 1, 12, 1},
		{13, 1, 12, 12},
		{6, 1, 12, 6},
		{1, 1, 12, 1},
		{12, 1, 12, 12},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{-5, 0, 100, 0},
		{150, 0, 100, 100},
		{2.5, 0, 100, 2.5},
	}
	for _, tt := range tests {
		if got := ClampFloat(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampFloat(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(1500, 24); got != 360 {
		t.Errorf("ApplyPercentage(1500, 24) = %v, want 360", got)
	}
	if got := ApplyPercentage(1000, 0); got != 0 {
		t.Errorf("ApplyPercentage(1000, 0) = %v, want 0", got)
	}
	if got := ApplyPercentage(-1000, 24); got != -240 {
		t.Errorf("ApplyPercentage(-1000, 24) = %v, want -240", got)
	}
}
