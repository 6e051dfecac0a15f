package game

import (
	"testing"
	"time"
)

func TestSnapshotClock(t *testing.T) {
	tests := []struct {
		left int
		want string
	}{
		{left: 120, want: "02:00"},
		{left: 119, want: "01:59"},
		{left: 9, want: "00:09"},
		{left: 0, want: "00:00"},
		{left: -3, want: "00:00"},
	}
	for _, tc := range tests {
		if got := (Snapshot{SecondsLeft: tc.left}).Clock(); got != tc.want {
			t.Fatalf("expected %q for %ds, got %q", tc.want, tc.left, got)
		}
	}
}

func TestSnapshotRoundSeconds(t *testing.T) {
	s := Snapshot{RoundLength: 90 * time.Second}
	if s.RoundSeconds() != 90 {
		t.Fatalf("expected 90, got %d", s.RoundSeconds())
	}
}
