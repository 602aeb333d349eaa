package factory

import (
	"fmt"

	"github.com/automoto/doomerang-tween/archetypes"
	"github.com/automoto/doomerang-tween/components"
	cfg "github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/easing"
	"github.com/automoto/doomerang-tween/props"
	"github.com/automoto/doomerang-tween/shared/tweenworld"
	"github.com/automoto/doomerang-tween/tween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const fadeDuration = 0.3

// CreateEasingRows spawns one row per easing curve, laid out in columns.
func CreateEasingRows(ecs *ecs.ECS) error {
	for i, entry := range easing.All() {
		if _, err := CreateEasingRow(ecs, i, entry); err != nil {
			return err
		}
	}
	return nil
}

// CreateEasingRow spawns a box that fades in and then slides along its
// track with the given curve, bouncing between both ends.
func CreateEasingRow(ecs *ecs.ECS, index int, curve easing.Entry) (*donburi.Entry, error) {
	pc := cfg.Playground
	perColumn := (len(easing.All()) + pc.Columns - 1) / pc.Columns
	column, row := index/perColumn, index%perColumn

	columnWidth := pc.LabelWidth + pc.TrackWidth + pc.BoxSize + pc.MarginX
	startX := pc.MarginX + float64(column)*columnWidth + pc.LabelWidth
	y := pc.MarginY + float64(row)*pc.RowHeight

	box := archetypes.EasingBox.Spawn(ecs)
	body := &components.BoxBody{X: startX, Y: y}
	components.Box.SetValue(box, components.BoxData{
		Index:  index,
		Name:   curve.Name,
		Easing: curve.Func,
		Body:   body,
		StartX: startX,
		EndX:   startX + pc.TrackWidth,
	})

	target, err := tween.Fields(body)
	if err != nil {
		return nil, fmt.Errorf("easing row %s: %w", curve.Name, err)
	}

	host := tweenworld.HostFor(ecs.World)
	fade, err := host.TweenEntity(box, target)
	if err != nil {
		return nil, fmt.Errorf("easing row %s: %w", curve.Name, err)
	}
	slide, err := host.TweenEntity(box, target)
	if err != nil {
		return nil, fmt.Errorf("easing row %s: %w", curve.Name, err)
	}

	fade.To(props.Of("alpha", 1), fadeDuration, tween.WithDelay(float64(row)*cfg.Tween.RowDelay))
	slide.To(props.Of("x", startX+pc.TrackWidth), cfg.Tween.Duration,
		tween.WithEasing(curve.Func),
		tween.WithYoyo(true),
	).Repeat(tween.RepeatForever, cfg.Tween.RepeatDelay)
	if err := fade.Chain(slide); err != nil {
		return nil, fmt.Errorf("easing row %s: %w", curve.Name, err)
	}
	fade.Start()

	components.Tween.SetValue(box, components.TweenData{Tween: slide})
	return box, nil
}
