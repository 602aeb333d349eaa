// Package tween animates numeric fields of a target over time.
//
// A Tween is configured with To, From or Rotate, started with Start and then
// advanced once per frame by the Scheduler it belongs to. Observers fire
// synchronously from inside Advance.
package tween

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-tween/easing"
	"github.com/automoto/doomerang-tween/props"
	"github.com/go-gl/mathgl/mgl64"
)

// RepeatForever makes a tween repeat until it is stopped.
const RepeatForever = math.MaxInt

type Tween struct {
	target    Target
	scheduler *Scheduler

	properties props.Set
	start      props.Set
	end        props.Set

	easing    easing.Func
	duration  float64
	time      float64
	timeScale float64

	state    State
	paused   bool
	reversed bool
	fromMode bool
	rotation bool
	yoyo     bool

	delay        float64
	currentDelay float64
	repeatCount  int
	repeatsDone  int
	repeatDelay  float64

	next *Tween

	fromRotation mgl64.Quat
	toRotation   mgl64.Quat
	working      mgl64.Quat

	onUpdate   []func(t *Tween, dt float64)
	onLoop     []func(t *Tween)
	onComplete []func(t *Tween, overshoot float64)
}

// New creates an idle tween writing into target. Start registers it with s;
// a tween built with a nil scheduler has to be advanced by hand.
func New(target Target, s *Scheduler) *Tween {
	return &Tween{
		target:       target,
		scheduler:    s,
		easing:       easing.Linear,
		timeScale:    1,
		fromRotation: mgl64.QuatIdent(),
		toRotation:   mgl64.QuatIdent(),
		working:      mgl64.QuatIdent(),
	}
}

// Option tunes a To, From or Rotate call.
type Option func(t *Tween)

func WithEasing(f easing.Func) Option {
	return func(t *Tween) { t.Ease(f) }
}

func WithDelay(seconds float64) Option {
	return func(t *Tween) { t.Delay(seconds) }
}

func WithRepeat(count int) Option {
	return func(t *Tween) { t.Repeat(count, 0) }
}

func WithYoyo(enable bool) Option {
	return func(t *Tween) { t.Yoyo(enable) }
}

func (t *Tween) configure(v props.Value, duration float64, opts []Option) {
	t.properties = v.Fields().Clone()
	t.duration = duration
	for _, opt := range opts {
		opt(t)
	}
}

// To animates the target from its values at Start to v.
func (t *Tween) To(v props.Value, duration float64, opts ...Option) *Tween {
	t.configure(v, duration, opts)
	t.fromMode, t.rotation = false, false
	return t
}

// From animates the target from v to its values at Start.
func (t *Tween) From(v props.Value, duration float64, opts ...Option) *Tween {
	t.configure(v, duration, opts)
	t.fromMode, t.rotation = true, false
	return t
}

// Rotate slerps the target's orientation to v. v holds Euler angles in
// degrees, or a quaternion when it carries a w field.
func (t *Tween) Rotate(v props.Value, duration float64, opts ...Option) *Tween {
	t.configure(v, duration, opts)
	t.fromMode, t.rotation = false, true
	return t
}

// RotateFrom slerps from the Euler angles in v to the target's orientation
// at Start.
func (t *Tween) RotateFrom(v props.Value, duration float64, opts ...Option) *Tween {
	t.configure(v, duration, opts)
	t.fromMode, t.rotation = true, true
	return t
}

// Start captures the endpoints from the target and hands the tween to its
// scheduler. Calling Start again restarts from the beginning.
func (t *Tween) Start() *Tween {
	t.paused = false
	t.repeatsDone = 0
	pending := t.delay > 0

	if t.reversed && !pending {
		t.time = t.duration
	} else {
		t.time = 0
	}

	t.start = make(props.Set, len(t.properties))
	t.end = make(props.Set, len(t.properties))
	for i, f := range t.properties {
		current := props.Field{Name: f.Name, Value: t.target.Field(f.Name)}
		if t.fromMode {
			t.start[i], t.end[i] = f, current
		} else {
			t.start[i], t.end[i] = current, f
		}
	}

	if t.rotation {
		t.captureRotation()
		t.working = t.fromRotation
	}

	t.currentDelay = t.delay
	if pending {
		t.setState(StateDelayed)
	} else {
		t.setState(StateActive)
	}

	if t.scheduler != nil {
		t.scheduler.Register(t)
	}
	return t
}

// Pause freezes time without leaving the scheduler.
func (t *Tween) Pause() *Tween {
	t.paused = true
	return t
}

func (t *Tween) Resume() *Tween {
	t.paused = false
	return t
}

// Stop ends the tween. It takes effect on the next Advance, which reports
// the tween as finished without writing to the target.
func (t *Tween) Stop() *Tween {
	t.paused = false
	t.setState(StateStopped)
	return t
}

// Delay sets the wait before the first playthrough of the next Start.
func (t *Tween) Delay(seconds float64) *Tween {
	t.delay = seconds
	return t
}

// Repeat sets how many extra playthroughs follow the first one and the
// pause before each of them.
func (t *Tween) Repeat(count int, delay float64) *Tween {
	t.repeatsDone = 0
	t.repeatCount = count
	t.repeatDelay = delay
	return t
}

// Loop switches between repeating forever and not repeating. Whichever of
// Loop and Repeat is called last wins.
func (t *Tween) Loop(enable bool) *Tween {
	if enable {
		t.repeatsDone = 0
		t.repeatCount = RepeatForever
	} else {
		t.repeatCount = 0
	}
	return t
}

// Yoyo makes every repeat run in the opposite direction of the previous one.
func (t *Tween) Yoyo(enable bool) *Tween {
	t.yoyo = enable
	return t
}

// Reverse toggles playback direction: time counts down from the duration.
func (t *Tween) Reverse() *Tween {
	t.reversed = !t.reversed
	return t
}

func (t *Tween) SetTimeScale(scale float64) *Tween {
	t.timeScale = scale
	return t
}

// Ease replaces the easing curve; nil restores Linear.
func (t *Tween) Ease(f easing.Func) *Tween {
	if f == nil {
		f = easing.Linear
	}
	t.easing = f
	return t
}

// Chain starts the given tweens one after another once t completes, so
// a.Chain(b, c) plays a, then b, then c. Links that would make the chain
// loop are rejected and nothing is changed.
func (t *Tween) Chain(tweens ...*Tween) error {
	if len(tweens) == 0 {
		return nil
	}
	members := map[*Tween]bool{t: true}
	for _, n := range tweens {
		if n == nil {
			return ErrNilTween
		}
		if members[n] {
			return ErrChainCycle
		}
		members[n] = true
	}
	seen := make(map[*Tween]bool)
	for n := tweens[len(tweens)-1].next; n != nil && !seen[n]; n = n.next {
		if members[n] {
			return ErrChainCycle
		}
		seen[n] = true
	}

	t.next = tweens[0]
	for i := 0; i < len(tweens)-1; i++ {
		tweens[i].next = tweens[i+1]
	}
	return nil
}

func (t *Tween) OnUpdate(fn func(t *Tween, dt float64)) *Tween {
	t.onUpdate = append(t.onUpdate, fn)
	return t
}

func (t *Tween) OnLoop(fn func(t *Tween)) *Tween {
	t.onLoop = append(t.onLoop, fn)
	return t
}

// OnComplete registers fn to run after the last playthrough with the time
// that overshot the end of it.
func (t *Tween) OnComplete(fn func(t *Tween, overshoot float64)) *Tween {
	t.onComplete = append(t.onComplete, fn)
	return t
}

// State reports the lifecycle state; Paused masks Delayed and Active.
func (t *Tween) State() State {
	if t.paused && t.state.running() {
		return StatePaused
	}
	return t.state
}

func (t *Tween) Playing() bool        { return t.state.running() && !t.paused }
func (t *Tween) Pending() bool        { return t.state == StateDelayed }
func (t *Tween) Complete() bool       { return t.state == StateCompleted }
func (t *Tween) Stopped() bool        { return t.state == StateStopped }
func (t *Tween) Reversed() bool       { return t.reversed }
func (t *Tween) Time() float64        { return t.time }
func (t *Tween) Duration() float64    { return t.duration }
func (t *Tween) RepeatsDone() int     { return t.repeatsDone }
func (t *Tween) Next() *Tween         { return t.next }
func (t *Tween) Target() Target       { return t.target }
func (t *Tween) Rotation() mgl64.Quat { return t.working }

func (t *Tween) setState(to State) {
	if !canTransition(t.state, to) {
		panic(fmt.Sprintf("tween: illegal transition %s -> %s", t.state, to))
	}
	t.state = to
}
