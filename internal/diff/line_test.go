package diff

import "testing"

func TestToAbsolute(t *testing.T) {
	tests := []struct {
		name     string
		newStart int
		relative int
		want     int
	}{
		{"first line maps to hunk start", 10, 1, 10},
		{"second line", 10, 2, 11},
		{"hunk at file start", 1, 1, 1},
		{"large offsets", 500, 42, 541},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToAbsolute(tt.newStart, tt.relative); got != tt.want {
				t.Errorf("ToAbsolute(%d, %d) = %d, want %d", tt.newStart, tt.relative, got, tt.want)
			}
		})
	}
}

func TestToAbsolute_IdentityAtFirstLine(t *testing.T) {
	for _, newStart := range []int{1, 2, 17, 1000} {
		if got := ToAbsolute(newStart, 1); got != newStart {
			t.Errorf("ToAbsolute(%d, 1) = %d, want %d", newStart, got, newStart)
		}
	}
}

func TestToAbsolute_MonotonicInRelativeLine(t *testing.T) {
	prev := ToAbsolute(25, 1)
	for rel := 2; rel <= 50; rel++ {
		cur := ToAbsolute(25, rel)
		if cur <= prev {
			t.Fatalf("ToAbsolute(25, %d) = %d, not greater than previous %d", rel, cur, prev)
		}
		prev = cur
	}
}
