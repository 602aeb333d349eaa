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

// CreateSpinner adds a square that turns back and forth around the screen
// axis using rotation mode.
func CreateSpinner(ecs *ecs.ECS) (*donburi.Entry, error) {
	pc := cfg.Playground
	spinner := archetypes.Spinner.Spawn(ecs)
	body := components.NewSpinnerBody()
	components.Spinner.SetValue(spinner, components.SpinnerData{
		X:    pc.SpinnerX,
		Y:    pc.SpinnerY,
		Size: pc.SpinnerSize,
		Body: body,
	})

	host := tweenworld.HostFor(ecs.World)
	tw, err := host.TweenEntity(spinner, body)
	if err != nil {
		return nil, fmt.Errorf("spinner tween: %w", err)
	}
	tw.Rotate(props.Vec3{Z: pc.SpinnerTurn}, cfg.Tween.Duration,
		tween.WithEasing(easing.BackInOut),
		tween.WithYoyo(true),
	).Repeat(tween.RepeatForever, cfg.Tween.RepeatDelay).Start()
	components.Tween.SetValue(spinner, components.TweenData{Tween: tw})

	return spinner, nil
}
