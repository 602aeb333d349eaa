package systems

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-tween/archetypes"
	"github.com/automoto/doomerang-tween/components"
	cfg "github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/shared/tweenworld"
	"github.com/automoto/doomerang-tween/tags"
	"github.com/automoto/doomerang-tween/tween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls applies the playground actions to every tween in the world.
func UpdateControls(e *ecs.ECS) {
	input := getOrCreateInput(e)
	pg := GetOrCreatePlayground(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pg.Paused = !pg.Paused
		applyPause(e, pg.Paused)
		pg.Status = "resumed"
		if pg.Paused {
			pg.Status = "paused"
		}
	}

	if GetAction(input, cfg.ActionReverse).JustPressed {
		pg.Reversed = !pg.Reversed
		restartReversed(e, pg)
		pg.Status = "restarted"
	}

	if GetAction(input, cfg.ActionFaster).JustPressed {
		SetTimeScale(e, pg.TimeScale+cfg.Tween.TimeScaleStep)
	}
	if GetAction(input, cfg.ActionSlower).JustPressed {
		SetTimeScale(e, pg.TimeScale-cfg.Tween.TimeScaleStep)
	}

	if GetAction(input, cfg.ActionRemoveRow).JustPressed {
		if name, ok := removeLastRow(e); ok {
			pg.Status = fmt.Sprintf("removed %s", name)
		}
	}

	if GetAction(input, cfg.ActionSave).JustPressed {
		if err := SaveCurrentSettings(pg); err != nil {
			pg.Status = "save failed"
		} else {
			pg.Status = "saved"
		}
	}
}

// GetOrCreatePlayground returns the playground singleton, creating it with
// default controls on first use.
func GetOrCreatePlayground(e *ecs.ECS) *components.PlaygroundData {
	entry, ok := components.Playground.First(e.World)
	if !ok {
		entry = archetypes.Playground.Spawn(e)
		components.Playground.SetValue(entry, components.PlaygroundData{TimeScale: 1})
	}
	return components.Playground.Get(entry)
}

// SetTimeScale clamps scale to the configured range and applies it to every
// tween.
func SetTimeScale(e *ecs.ECS, scale float64) {
	pg := GetOrCreatePlayground(e)
	pg.TimeScale = math.Max(cfg.Tween.MinTimeScale, math.Min(cfg.Tween.MaxTimeScale, scale))
	eachTween(e, func(_ *donburi.Entry, tw *tween.Tween) {
		tw.SetTimeScale(pg.TimeScale)
	})
	pg.Status = fmt.Sprintf("time scale %.2f", pg.TimeScale)
}

func applyPause(e *ecs.ECS, paused bool) {
	eachTween(e, func(_ *donburi.Entry, tw *tween.Tween) {
		if paused {
			tw.Pause()
		} else {
			tw.Resume()
		}
	})
}

// restartReversed flips the direction of the rows and the spinner and plays
// them again from their resting pose.
func restartReversed(e *ecs.ECS, pg *components.PlaygroundData) {
	tags.Box.Each(e.World, func(entry *donburi.Entry) {
		box := components.Box.Get(entry)
		box.Body.X = box.StartX
		box.Body.Alpha = 1
		restart(components.Tween.Get(entry).Tween, pg)
	})
	tags.Spinner.Each(e.World, func(entry *donburi.Entry) {
		restart(components.Tween.Get(entry).Tween, pg)
	})
}

func restart(tw *tween.Tween, pg *components.PlaygroundData) {
	if tw.Reversed() != pg.Reversed {
		tw.Reverse()
	}
	tw.Start()
	if pg.Paused {
		tw.Pause()
	}
}

// removeLastRow removes the easing row with the highest index. Its tweens
// stop on the next tick.
func removeLastRow(e *ecs.ECS) (string, bool) {
	var last *donburi.Entry
	tags.Box.Each(e.World, func(entry *donburi.Entry) {
		if last == nil || components.Box.Get(entry).Index > components.Box.Get(last).Index {
			last = entry
		}
	})
	if last == nil {
		return "", false
	}
	name := components.Box.Get(last).Name
	tweenworld.RemoveEntity(e.World, last.Entity())
	return name, true
}

func eachTween(e *ecs.ECS, fn func(*donburi.Entry, *tween.Tween)) {
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		if tw := components.Tween.Get(entry).Tween; tw != nil {
			fn(entry, tw)
		}
	})
}
