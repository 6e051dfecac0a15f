package game

import "time"

// DefaultRoundDuration is how long the player has to find words.
const DefaultRoundDuration = 120 * time.Second

// RoundTimer counts a round down by the real time that elapsed between
// ticks, so irregular frame delivery or a suspended window never drifts.
type RoundTimer struct {
	total     time.Duration
	remaining time.Duration
}

func NewRoundTimer(total time.Duration) RoundTimer {
	return RoundTimer{total: total, remaining: total}
}

// Advance subtracts elapsed. It reports the whole seconds shown before the
// call and whether that value went down.
func (t *RoundTimer) Advance(elapsed time.Duration) (prevSeconds int, crossed bool) {
	prevSeconds = t.Seconds()
	if elapsed <= 0 {
		return prevSeconds, false
	}
	t.remaining -= elapsed
	if t.remaining < 0 {
		t.remaining = 0
	}
	return prevSeconds, t.Seconds() < prevSeconds
}

func (t RoundTimer) Remaining() time.Duration {
	return t.remaining
}

func (t RoundTimer) Total() time.Duration {
	return t.total
}

// Seconds is the remaining time rounded up to whole seconds.
func (t RoundTimer) Seconds() int {
	if t.remaining <= 0 {
		return 0
	}
	return int((t.remaining + time.Second - 1) / time.Second)
}

func (t RoundTimer) Expired() bool {
	return t.remaining <= 0
}
