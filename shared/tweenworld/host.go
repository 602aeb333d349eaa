// Package tweenworld drives tweens from a donburi world. It must stay free of
// ebiten so the tween tests and any headless tooling can use it.
package tweenworld

import (
	"errors"
	"log"

	"github.com/automoto/doomerang-tween/tween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EntityRemoved is published by RemoveEntity before the entity leaves the
// world.
type EntityRemoved struct {
	Entity donburi.Entity
}

var EntityRemovedEvent = events.NewEventType[EntityRemoved]()

var ErrHostDestroyed = errors.New("tweenworld: host destroyed")

// Host is the frame-tick source for one world. It satisfies tween.Host.
type Host struct {
	world     donburi.World
	entity    donburi.Entity
	ticks     []func(dt float64)
	destroys  []func()
	watched   map[donburi.Entity][]*tween.Tween
	destroyed bool
}

type HostData struct {
	Host *Host
}

var HostComponent = donburi.NewComponentType[HostData]()

// HostFor returns the host of world, creating its singleton entity on first
// use.
func HostFor(world donburi.World) *Host {
	if entry, ok := HostComponent.First(world); ok {
		return HostComponent.Get(entry).Host
	}

	h := &Host{
		world:   world,
		watched: make(map[donburi.Entity][]*tween.Tween),
	}
	h.entity = world.Create(HostComponent)
	HostComponent.SetValue(world.Entry(h.entity), HostData{Host: h})
	EntityRemovedEvent.Subscribe(world, h.onEntityRemoved)
	return h
}

func (h *Host) OnTick(fn func(dt float64)) { h.ticks = append(h.ticks, fn) }
func (h *Host) OnDestroy(fn func())        { h.destroys = append(h.destroys, fn) }

// Tick delivers removal events and then advances every subscriber by dt.
func (h *Host) Tick(dt float64) {
	if h.destroyed {
		return
	}
	EntityRemovedEvent.ProcessEvents(h.world)
	for _, fn := range h.ticks {
		fn(dt)
	}
}

// Destroy tears the host down and drops its singleton entity, so the next
// HostFor call on the same world starts fresh.
func (h *Host) Destroy() {
	if h.destroyed {
		log.Printf("tweenworld: host destroyed twice")
		return
	}
	h.destroyed = true
	for _, fn := range h.destroys {
		fn()
	}
	h.ticks, h.destroys = nil, nil
	h.watched = nil
	if h.world.Valid(h.entity) {
		h.world.Remove(h.entity)
	}
}

// Scheduler returns the scheduler this host drives.
func (h *Host) Scheduler() (*tween.Scheduler, error) {
	if h.destroyed {
		return nil, ErrHostDestroyed
	}
	return tween.SchedulerFor(h)
}

// TweenEntity creates a tween owned by entry. It is stopped when the entity
// goes through RemoveEntity.
func (h *Host) TweenEntity(entry *donburi.Entry, target tween.Target) (*tween.Tween, error) {
	if h.destroyed {
		return nil, ErrHostDestroyed
	}
	tw, err := tween.ForHost(h, target)
	if err != nil {
		return nil, err
	}
	e := entry.Entity()
	h.watched[e] = append(h.watched[e], tw)
	tw.OnComplete(func(t *tween.Tween, _ float64) {
		h.unwatch(e, t)
	})
	return tw, nil
}

// Watched returns how many tweens are bound to e.
func (h *Host) Watched(e donburi.Entity) int {
	return len(h.watched[e])
}

func (h *Host) unwatch(e donburi.Entity, t *tween.Tween) {
	list := h.watched[e]
	for i, w := range list {
		if w == t {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(h.watched, e)
		return
	}
	h.watched[e] = list
}

func (h *Host) onEntityRemoved(_ donburi.World, ev EntityRemoved) {
	if h.destroyed {
		return
	}
	for _, t := range h.watched[ev.Entity] {
		t.Stop()
	}
	delete(h.watched, ev.Entity)
}

// RemoveEntity announces the removal of e and removes it from world.
func RemoveEntity(world donburi.World, e donburi.Entity) {
	EntityRemovedEvent.Publish(world, EntityRemoved{Entity: e})
	world.Remove(e)
}
