package tween

import (
	"fmt"
	"reflect"
	"sync"
)

// Host is an owning context that delivers frame ticks and announces its own
// teardown, typically a game world or scene.
type Host interface {
	OnTick(fn func(dt float64))
	OnDestroy(fn func())
}

var (
	registryMu sync.Mutex
	schedulers = make(map[Host]*Scheduler)
)

// SchedulerFor returns the scheduler owned by h, creating it and subscribing
// it to h's ticks on first use. The scheduler is forgotten when h is
// destroyed.
func SchedulerFor(h Host) (*Scheduler, error) {
	if h == nil {
		return nil, ErrNilHost
	}
	if v := reflect.ValueOf(h); !v.Type().Comparable() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil, fmt.Errorf("%w: %T", ErrInvalidHost, h)
	}

	registryMu.Lock()
	s, ok := schedulers[h]
	if !ok {
		s = NewScheduler()
		schedulers[h] = s
	}
	registryMu.Unlock()

	if !ok {
		h.OnTick(s.Tick)
		h.OnDestroy(func() {
			registryMu.Lock()
			if schedulers[h] == s {
				delete(schedulers, h)
			}
			registryMu.Unlock()
		})
	}
	return s, nil
}

// ForHost creates a tween for target driven by h's scheduler.
func ForHost(h Host, target Target) (*Tween, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	s, err := SchedulerFor(h)
	if err != nil {
		return nil, err
	}
	return New(target, s), nil
}
