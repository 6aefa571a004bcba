package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clk := NewRealClock()

	before := time.Now().Add(-time.Second)
	actual := clk.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() = %v, expected between %v and %v", actual, before, after)
	}
	if actual.Nanosecond() != 0 {
		t.Errorf("RealClock.Now() should be truncated to seconds, got %v", actual)
	}
}

func TestFakeClock_Now(t *testing.T) {
	fixedTime := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	clk := NewFakeClock(fixedTime)

	first := clk.Now()
	time.Sleep(time.Millisecond)
	second := clk.Now()

	if !first.Equal(fixedTime) || !second.Equal(fixedTime) {
		t.Errorf("FakeClock.Now() = %v, %v; want %v both times", first, second, fixedTime)
	}
}
