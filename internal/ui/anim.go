package ui

import "time"

// slide eases a tab's displayed x toward its target.
// Retargeting mid-flight starts the new ease from the current value.
type slide struct {
	from, to float32
	start    time.Time
	dur      time.Duration
}

func newSlide(x float32) *slide {
	return &slide{from: x, to: x}
}

// jump places the tab at x with no easing
func (s *slide) jump(x float32) {
	s.from, s.to = x, x
	s.dur = 0
}

// aim eases toward x over dur starting at now. Aiming at the current target is a no-op.
func (s *slide) aim(now time.Time, x float32, dur time.Duration) {
	if x == s.to {
		return
	}
	if dur <= 0 {
		s.jump(x)
		return
	}
	s.from = s.value(now)
	s.to = x
	s.start = now
	s.dur = dur
}

// value returns the displayed x at now
func (s *slide) value(now time.Time) float32 {
	if s.dur <= 0 {
		return s.to
	}
	t := float32(now.Sub(s.start)) / float32(s.dur)
	if t >= 1 {
		return s.to
	}
	if t <= 0 {
		return s.from
	}
	return s.from + (s.to-s.from)*easeInOut(t)
}

// moving reports whether the slide still needs frames at now
func (s *slide) moving(now time.Time) bool {
	return s.dur > 0 && now.Sub(s.start) < s.dur && s.from != s.to
}

// easeInOut is a cubic ease-in-out over [0,1]
func easeInOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 1 + f*f*f/2
}
