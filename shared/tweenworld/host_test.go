package tweenworld

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-tween/props"
	"github.com/automoto/doomerang-tween/tween"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var position = donburi.NewComponentType[tween.Map]()

func TestHostForIsSingleton(t *testing.T) {
	world := donburi.NewWorld()
	h := HostFor(world)
	defer h.Destroy()

	if HostFor(world) != h {
		t.Fatal("second HostFor created a new host")
	}
	if other := HostFor(donburi.NewWorld()); other == h {
		t.Fatal("worlds share a host")
	} else {
		other.Destroy()
	}
}

func TestHostTicksScheduler(t *testing.T) {
	world := donburi.NewWorld()
	h := HostFor(world)
	defer h.Destroy()

	target := tween.Map{"x": 0}
	tw, err := tween.ForHost(h, target)
	if err != nil {
		t.Fatal(err)
	}
	tw.To(props.Of("x", 4), 1).Start()
	h.Tick(0)
	h.Tick(0.25)
	if target["x"] != 1 {
		t.Fatalf("x = %v, want 1", target["x"])
	}

	s, err := h.Scheduler()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains(tw) {
		t.Fatal("host scheduler does not hold the tween")
	}
}

func TestRemoveEntityStopsItsTweens(t *testing.T) {
	world := donburi.NewWorld()
	h := HostFor(world)
	defer h.Destroy()

	entry := world.Entry(world.Create(position))
	position.SetValue(entry, tween.Map{"x": 0})
	target := *position.Get(entry)

	tw, err := h.TweenEntity(entry, target)
	if err != nil {
		t.Fatal(err)
	}
	tw.To(props.Of("x", 10), 1).Start()
	h.Tick(0)
	h.Tick(0.5)

	RemoveEntity(world, entry.Entity())
	h.Tick(0.25)

	if !tw.Stopped() {
		t.Fatalf("state = %v, want stopped", tw.State())
	}
	if target["x"] != 5 {
		t.Fatalf("x = %v, tween kept writing after removal", target["x"])
	}
	if world.Valid(entry.Entity()) {
		t.Fatal("entity still in the world")
	}
}

func TestCompletedTweenIsUnwatched(t *testing.T) {
	world := donburi.NewWorld()
	h := HostFor(world)
	defer h.Destroy()

	entry := world.Entry(world.Create(position))
	tw, _ := h.TweenEntity(entry, tween.Map{"x": 0})
	tw.To(props.Of("x", 1), 0.5).Start()
	if h.Watched(entry.Entity()) != 1 {
		t.Fatal("tween not watched")
	}
	h.Tick(0)
	h.Tick(0.5)
	if h.Watched(entry.Entity()) != 0 {
		t.Fatal("completed tween still watched")
	}
}

func TestDestroyedHost(t *testing.T) {
	world := donburi.NewWorld()
	h := HostFor(world)
	s1, _ := h.Scheduler()
	entry := world.Entry(world.Create(position))
	h.Destroy()

	if _, err := h.TweenEntity(entry, tween.Map{}); !errors.Is(err, ErrHostDestroyed) {
		t.Fatalf("err = %v, want ErrHostDestroyed", err)
	}
	next := HostFor(world)
	defer next.Destroy()
	if next == h {
		t.Fatal("destroyed host returned again")
	}
	s2, _ := next.Scheduler()
	if s2 == s1 {
		t.Fatal("new host reuses the old scheduler")
	}
}

func TestObjectTarget(t *testing.T) {
	space := resolv.NewSpace(320, 240, 16, 16)
	obj := resolv.NewObject(0, 0, 16, 16)
	space.Add(obj)

	tw := tween.New(ObjectTarget{Object: obj}, nil).
		To(props.Map{"x": 100, "w": 32}, 1).
		Start()
	tw.Advance(0.5)

	if obj.X != 50 || obj.W != 24 {
		t.Fatalf("object at x=%v w=%v", obj.X, obj.W)
	}
	if obj.Space != space {
		t.Fatal("object fell out of its space after the update")
	}
}
