package tween

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/doomerang-tween/easing"
	"github.com/automoto/doomerang-tween/props"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= eps }

func expectX(t *testing.T, target Map, want float64) {
	t.Helper()
	if got := target["x"]; !approx(got, want) {
		t.Fatalf("x = %v, want %v", got, want)
	}
}

func TestLinearToCompletesAndIsDropped(t *testing.T) {
	s := NewScheduler()
	target := Map{"x": 0}
	tw := New(target, s).To(props.Of("x", 10), 1).Start()

	s.Tick(0)
	if !s.Contains(tw) {
		t.Fatal("started tween was not admitted")
	}

	s.Tick(0.5)
	expectX(t, target, 5)
	if tw.Complete() {
		t.Fatal("tween completed halfway through")
	}

	s.Tick(0.5)
	expectX(t, target, 10)
	if !tw.Complete() {
		t.Fatalf("state = %v, want Completed", tw.State())
	}
	if s.Contains(tw) || s.Len() != 0 {
		t.Fatal("completed tween still active")
	}
}

func TestDelayIsConsumedBeforePlaythrough(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1, WithDelay(0.2)).Start()
	if !tw.Pending() {
		t.Fatal("tween with delay does not start pending")
	}

	tw.Advance(0.1)
	if !tw.Pending() {
		t.Fatal("delay elapsed too early")
	}
	expectX(t, target, 0)

	tw.Advance(0.1)
	tw.Advance(0.1)
	if tw.Pending() {
		t.Fatal("still pending after the delay elapsed")
	}
	if got := target["x"]; math.Abs(got-1) > 1e-6 {
		t.Fatalf("x = %v, want 1 (0.1s into the playthrough)", got)
	}
}

func TestYoyoRepeatAlternatesDirection(t *testing.T) {
	target := Map{"x": 0}
	var loops, completes int
	tw := New(target, nil).
		To(props.Of("x", 10), 1, WithRepeat(1), WithYoyo(true)).
		OnLoop(func(*Tween) { loops++ }).
		OnComplete(func(*Tween, float64) { completes++ }).
		Start()

	tw.Advance(0.5)
	expectX(t, target, 5)
	if !tw.Advance(0.5) {
		t.Fatal("tween dropped before its repeat")
	}
	expectX(t, target, 10)
	if loops != 1 || completes != 0 {
		t.Fatalf("loops=%d completes=%d after first playthrough", loops, completes)
	}

	tw.Advance(0.5)
	expectX(t, target, 5)
	if tw.Advance(0.5) {
		t.Fatal("tween kept after its last playthrough")
	}
	expectX(t, target, 0)
	if loops != 1 || completes != 1 {
		t.Fatalf("loops=%d completes=%d at the end", loops, completes)
	}
	if tw.RepeatsDone() != 1 {
		t.Fatalf("repeats done = %d, want 1", tw.RepeatsDone())
	}
}

func TestRepeatWithoutYoyoRestarts(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1).Repeat(2, 0).Start()
	var loops int
	tw.OnLoop(func(*Tween) { loops++ })

	for i := 0; i < 3; i++ {
		tw.Advance(0.5)
		expectX(t, target, 5)
		tw.Advance(0.5)
		expectX(t, target, 10)
	}
	if loops != 2 {
		t.Fatalf("loops = %d, want 2", loops)
	}
	if !tw.Complete() {
		t.Fatalf("state = %v, want Completed", tw.State())
	}
}

func TestRepeatDelayHoldsValues(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1).Repeat(1, 0.5).Start()

	tw.Advance(1)
	if !tw.Pending() {
		t.Fatal("repeat delay not pending")
	}
	target["x"] = 42
	tw.Advance(0.25)
	expectX(t, target, 42)
	tw.Advance(0.5)
	if tw.Pending() {
		t.Fatal("repeat delay did not elapse")
	}
	expectX(t, target, 2.5)
}

func TestReverseCountsDown(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1).Reverse().Start()
	if tw.Time() != 1 {
		t.Fatalf("time = %v, want duration", tw.Time())
	}
	tw.Advance(0.25)
	if !approx(tw.Time(), 0.75) {
		t.Fatalf("time = %v, want 0.75", tw.Time())
	}
	expectX(t, target, 7.5)

	if tw.Advance(0.75) {
		t.Fatal("reversed tween kept after reaching zero")
	}
	expectX(t, target, 0)
}

func TestFromSwapsEndpoints(t *testing.T) {
	target := Map{"x": 10}
	tw := New(target, nil).From(props.Of("x", 0), 1).Start()
	tw.Advance(0.25)
	expectX(t, target, 2.5)
	tw.Advance(0.75)
	expectX(t, target, 10)
}

func TestZeroDurationCompletesOnFirstAdvance(t *testing.T) {
	target := Map{"x": 0}
	var overshoot = -1.0
	tw := New(target, nil).
		To(props.Of("x", 10), 0).
		OnComplete(func(_ *Tween, o float64) { overshoot = o }).
		Start()
	if tw.Advance(0) {
		t.Fatal("zero-length tween kept")
	}
	expectX(t, target, 10)
	if overshoot != 0 {
		t.Fatalf("overshoot = %v, want 0", overshoot)
	}
}

func TestOvershootReported(t *testing.T) {
	var overshoot float64
	tw := New(Map{"x": 0}, nil).
		To(props.Of("x", 1), 1).
		OnComplete(func(_ *Tween, o float64) { overshoot = o }).
		Start()
	tw.Advance(1.25)
	if !approx(overshoot, 0.25) {
		t.Fatalf("overshoot = %v, want 0.25", overshoot)
	}
}

func TestEasingApplied(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1, WithEasing(easing.QuadraticIn)).Start()
	tw.Advance(0.5)
	expectX(t, target, 2.5)
}

func TestTimeScale(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1).SetTimeScale(2).Start()
	tw.Advance(0.25)
	expectX(t, target, 5)
}

func TestNegativeDtMovesBackward(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1).Start()
	tw.Advance(0.5)
	tw.Advance(-0.25)
	expectX(t, target, 2.5)
}

func TestPauseFreezesTime(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 10), 1).Start()
	tw.Advance(0.25)
	tw.Pause()
	if tw.State() != StatePaused || tw.Playing() {
		t.Fatalf("state = %v after Pause", tw.State())
	}
	if !tw.Advance(0.5) {
		t.Fatal("paused tween dropped")
	}
	expectX(t, target, 2.5)
	tw.Resume()
	tw.Advance(0.25)
	expectX(t, target, 5)
}

func TestStopEndsOnNextAdvance(t *testing.T) {
	s := NewScheduler()
	target := Map{"x": 0}
	tw := New(target, s).To(props.Of("x", 10), 1).Start()
	s.Tick(0)
	s.Tick(0.25)
	tw.Stop()
	if tw.Advance(0.25) {
		t.Fatal("stopped tween reported as live")
	}
	expectX(t, target, 2.5)

	s.Tick(0.25)
	if s.Contains(tw) {
		t.Fatal("stopped tween still scheduled")
	}
	expectX(t, target, 2.5)
}

func TestStopFromUpdateObserver(t *testing.T) {
	tw := New(Map{"x": 0}, nil).To(props.Of("x", 10), 1).Loop(true)
	tw.OnUpdate(func(tw *Tween, _ float64) { tw.Stop() })
	tw.Start()
	if tw.Advance(1) {
		t.Fatal("tween stopped by its observer was kept")
	}
	if !tw.Stopped() {
		t.Fatalf("state = %v, want Stopped", tw.State())
	}
}

func TestControlsOnIdleTweenAreSafe(t *testing.T) {
	tw := New(Map{}, nil)
	tw.Pause().Resume()
	if tw.State() != StateIdle {
		t.Fatalf("state = %v, want Idle", tw.State())
	}
	tw.Stop().Stop()
	if !tw.Stopped() {
		t.Fatalf("state = %v, want Stopped", tw.State())
	}
	tw.Resume()
	if tw.Advance(1) {
		t.Fatal("stopped tween advanced")
	}
}

func TestLoopForever(t *testing.T) {
	target := Map{"x": 0}
	tw := New(target, nil).To(props.Of("x", 1), 0.1).Loop(true).Start()
	for i := 0; i < 1000; i++ {
		if !tw.Advance(0.1) {
			t.Fatalf("looping tween dropped after %d advances", i)
		}
	}
	if tw.RepeatsDone() < 999 {
		t.Fatalf("repeats done = %d", tw.RepeatsDone())
	}
}

func TestLoopAndRepeatLastCallWins(t *testing.T) {
	tw := New(Map{"x": 0}, nil).To(props.Of("x", 1), 1).Loop(true).Repeat(0, 0).Start()
	if tw.Advance(1) {
		t.Fatal("Repeat(0) after Loop(true) still looped")
	}

	tw = New(Map{"x": 0}, nil).To(props.Of("x", 1), 1).Repeat(0, 0).Loop(true).Start()
	if !tw.Advance(1) {
		t.Fatal("Loop(true) after Repeat(0) did not loop")
	}
}

func TestRestartFromCompleteObserver(t *testing.T) {
	s := NewScheduler()
	target := Map{"x": 0}
	restarted := false
	tw := New(target, s).To(props.Of("x", 10), 1)
	tw.OnComplete(func(tw *Tween, _ float64) {
		if !restarted {
			restarted = true
			target["x"] = 0
			tw.Start()
		}
	})
	tw.Start()
	s.Tick(0)
	s.Tick(1)
	if !s.Contains(tw) {
		t.Fatal("tween restarted in its complete observer was dropped")
	}
	if s.Len() != 1 {
		t.Fatalf("active = %d, want 1", s.Len())
	}
	s.Tick(0.5)
	expectX(t, target, 5)
}

func TestChainStartsSuccessorNextTick(t *testing.T) {
	s := NewScheduler()
	target := Map{"x": 0, "y": 0}
	a := New(target, s).To(props.Of("x", 10), 0.5)
	b := New(target, s).To(props.Of("y", 10), 0.5)
	if err := a.Chain(b); err != nil {
		t.Fatal(err)
	}
	a.Start()
	s.Tick(0)

	s.Tick(0.5)
	if s.Contains(a) {
		t.Fatal("completed tween still active")
	}
	if !s.Contains(b) {
		t.Fatal("chained tween not admitted")
	}
	if b.Time() != 0 || target["y"] != 0 {
		t.Fatal("chained tween advanced in the tick that started it")
	}

	s.Tick(0.25)
	if got := target["y"]; !approx(got, 5) {
		t.Fatalf("y = %v, want 5", got)
	}
}

func TestChainSequence(t *testing.T) {
	a := New(Map{}, nil)
	b := New(Map{}, nil)
	c := New(Map{}, nil)
	if err := a.Chain(b, c); err != nil {
		t.Fatal(err)
	}
	if a.Next() != b || b.Next() != c || c.Next() != nil {
		t.Fatal("a.Chain(b, c) did not link a -> b -> c")
	}
}

func TestChainRejectsCycles(t *testing.T) {
	a := New(Map{}, nil)
	b := New(Map{}, nil)
	c := New(Map{}, nil)

	if err := a.Chain(a); !errors.Is(err, ErrChainCycle) {
		t.Fatalf("self chain: err = %v", err)
	}
	if err := a.Chain(b, b); !errors.Is(err, ErrChainCycle) {
		t.Fatalf("repeated link: err = %v", err)
	}
	if err := a.Chain(b, c); err != nil {
		t.Fatal(err)
	}
	if err := c.Chain(a); !errors.Is(err, ErrChainCycle) {
		t.Fatalf("closing the loop: err = %v", err)
	}
	if c.Next() != nil {
		t.Fatal("rejected chain mutated links")
	}
	if err := a.Chain(b, nil); !errors.Is(err, ErrNilTween) {
		t.Fatalf("nil link: err = %v", err)
	}
}

func TestStartTwiceRegistersOnce(t *testing.T) {
	s := NewScheduler()
	tw := New(Map{"x": 0}, s).To(props.Of("x", 1), 1)
	tw.Start()
	tw.Start()
	s.Tick(0)
	if s.Len() != 1 {
		t.Fatalf("active = %d, want 1", s.Len())
	}
}

func TestColorTween(t *testing.T) {
	target := Map{"r": 0, "g": 0, "b": 0, "a": 1}
	tw := New(target, nil).To(props.RGB(1, 0.5, 0), 1).Start()
	tw.Advance(0.5)
	if !approx(target["r"], 0.5) || !approx(target["g"], 0.25) || target["a"] != 1 {
		t.Fatalf("target = %v", target)
	}
}

type flushTarget struct {
	Map
	flushes int
}

func (f *flushTarget) Flush() { f.flushes++ }

func TestFlushAfterWrites(t *testing.T) {
	target := &flushTarget{Map: Map{"x": 0}}
	tw := New(target, nil).To(props.Of("x", 1), 1).Start()
	tw.Advance(0.5)
	tw.Advance(0.5)
	if target.flushes != 2 {
		t.Fatalf("flushes = %d, want 2", target.flushes)
	}
}
