package ui

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSlide_Aim(t *testing.T) {
	s := newSlide(0)
	dur := 100 * time.Millisecond
	s.aim(epoch, 100, dur)

	testCases := []struct {
		name     string
		at       time.Duration
		expected float32
	}{
		{"start", 0, 0},
		{"midpoint", 50 * time.Millisecond, 50},
		{"done", 100 * time.Millisecond, 100},
		{"after", time.Second, 100},
	}
	for _, tc := range testCases {
		if got := s.value(epoch.Add(tc.at)); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}

	if !s.moving(epoch.Add(10 * time.Millisecond)) {
		t.Error("expected slide to be moving mid-ease")
	}
	if s.moving(epoch.Add(dur)) {
		t.Error("expected slide to be at rest after the duration")
	}
}

func TestSlide_RetargetStartsFromCurrentValue(t *testing.T) {
	s := newSlide(0)
	dur := 100 * time.Millisecond
	s.aim(epoch, 100, dur)

	mid := epoch.Add(50 * time.Millisecond)
	s.aim(mid, 0, dur)
	if got := s.value(mid); got != 50 {
		t.Errorf("expected retarget to start at 50, got %v", got)
	}
	if got := s.value(mid.Add(dur)); got != 0 {
		t.Errorf("expected to arrive at 0, got %v", got)
	}
}

func TestSlide_AimSameTargetKeepsProgress(t *testing.T) {
	s := newSlide(0)
	dur := 100 * time.Millisecond
	s.aim(epoch, 100, dur)
	s.aim(epoch.Add(50*time.Millisecond), 100, dur)
	if got := s.value(epoch.Add(dur)); got != 100 {
		t.Errorf("re-aiming at the same target restarted the ease: got %v", got)
	}
}

func TestSlide_Jump(t *testing.T) {
	s := newSlide(0)
	s.aim(epoch, 100, time.Second)
	s.jump(42)
	if got := s.value(epoch); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
	if s.moving(epoch) {
		t.Error("jump should not animate")
	}

	s.aim(epoch, 10, 0)
	if got := s.value(epoch); got != 10 {
		t.Errorf("zero duration should jump: got %v", got)
	}
}

func TestEaseInOut(t *testing.T) {
	if easeInOut(0) != 0 || easeInOut(1) != 1 || easeInOut(0.5) != 0.5 {
		t.Errorf("unexpected endpoints: %v %v %v", easeInOut(0), easeInOut(0.5), easeInOut(1))
	}
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := easeInOut(float32(i) / 100)
		if v < prev {
			t.Fatalf("ease not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}
