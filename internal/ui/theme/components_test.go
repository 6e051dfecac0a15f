package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/paroliere/internal/game"
)

func TestFrameColorFollowsPhaseAndVerdict(t *testing.T) {
	tests := []struct {
		name  string
		phase game.Phase
		last  game.LastWord
		want  rl.Color
	}{
		{name: "loading", phase: game.PhaseLoading, want: FrameIdle},
		{name: "choosing", phase: game.PhaseChoosingLetters, want: FrameIdle},
		{name: "running none", phase: game.PhaseRunning, last: game.LastWordNone, want: FrameIdle},
		{name: "running valid", phase: game.PhaseRunning, last: game.LastWordValid, want: FrameValid},
		{name: "running invalid", phase: game.PhaseRunning, last: game.LastWordInvalid, want: FrameInvalid},
		{name: "ended", phase: game.PhaseEnded, last: game.LastWordInvalid, want: FrameValid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FrameColor(tc.phase, tc.last); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTimerColorFadesGreenToRed(t *testing.T) {
	full := TimerColor(120, 120)
	if full.R != 0 || full.G != 240 {
		t.Fatalf("expected green at full time, got %v", full)
	}
	half := TimerColor(60, 120)
	if half.R != 120 || half.G != 120 {
		t.Fatalf("expected even mix at half time, got %v", half)
	}
	zero := TimerColor(0, 120)
	if zero.R != 240 || zero.G != 0 {
		t.Fatalf("expected red at zero, got %v", zero)
	}
	if clamped := TimerColor(500, 120); clamped != full {
		t.Fatalf("expected clamp to full, got %v", clamped)
	}
}

func TestRoleSizes(t *testing.T) {
	want := map[Role]int32{RoleLight: 35, RoleRegular: 50, RoleBold: 70, RoleDisplay: 100}
	for _, role := range Roles() {
		if role.Size() != want[role] {
			t.Fatalf("role %d: expected %d, got %d", role, want[role], role.Size())
		}
	}
	if Role(99).Size() != 50 {
		t.Fatalf("expected unknown role to fall back to regular size")
	}
}
