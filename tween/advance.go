package tween

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Advance moves the tween forward by dt seconds of scaled time and writes
// the interpolated values into the target. It reports whether the scheduler
// should keep the tween for the next tick.
func (t *Tween) Advance(dt float64) bool {
	switch t.state {
	case StateStopped, StateIdle:
		return false
	case StateCompleted:
		return true
	}
	if t.paused {
		return true
	}

	step := dt * t.timeScale
	pending := t.state == StateDelayed
	if t.reversed && !pending {
		t.time -= step
	} else {
		t.time += step
	}

	if pending {
		if t.time < t.currentDelay {
			return true
		}
		over := t.time - t.currentDelay
		if t.reversed {
			t.time = t.duration - over
		} else {
			t.time = over
		}
		t.setState(StateActive)
	}

	ended := false
	var overshoot float64
	if (!t.reversed && t.time >= t.duration) || (t.reversed && t.time <= 0) {
		ended = true
		t.setState(StateCompleted)
		if t.reversed {
			overshoot = t.duration - t.time
			t.time = 0
		} else {
			overshoot = t.time - t.duration
			t.time = t.duration
		}
	}

	elapsed := 1.0
	if t.duration != 0 {
		elapsed = t.time / t.duration
	}
	t.apply(t.easing(elapsed))

	for _, fn := range t.onUpdate {
		fn(t, dt)
	}

	if t.state == StateStopped {
		// stopped by an update observer
		return false
	}
	if !ended {
		return true
	}

	if t.repeat(overshoot) {
		for _, fn := range t.onLoop {
			fn(t)
		}
		return true
	}

	for _, fn := range t.onComplete {
		fn(t, overshoot)
	}
	if t.next != nil {
		t.next.Start()
	}
	return false
}

func (t *Tween) apply(a float64) {
	rotator, rotates := t.target.(Rotator)
	rotates = rotates && t.rotation

	for i, f := range t.properties {
		if rotates && isRotationAxis(f.Name) {
			continue
		}
		s, e := t.start[i].Value, t.end[i].Value
		t.target.SetField(f.Name, s+(e-s)*a)
	}

	if t.rotation {
		t.working = mgl64.QuatSlerp(t.fromRotation, t.toRotation, a)
		if rotates {
			rotator.SetLocalRotation(t.working)
		}
	}

	if f, ok := t.target.(Flusher); ok {
		f.Flush()
	}
}

// repeat starts another playthrough if any are left, carrying over the
// time that overshot the previous one.
func (t *Tween) repeat(overshoot float64) bool {
	if t.repeatCount != RepeatForever && t.repeatsDone >= t.repeatCount {
		return false
	}
	if t.repeatsDone < math.MaxInt {
		t.repeatsDone++
	}

	if t.reversed {
		t.time = t.duration - overshoot
	} else {
		t.time = overshoot
	}
	t.currentDelay = t.repeatDelay
	t.setState(StateDelayed)

	if t.yoyo {
		t.start, t.end = t.end, t.start
		t.fromRotation, t.toRotation = t.toRotation, t.fromRotation
	}
	return true
}
