package factory

import (
	"fmt"

	"github.com/automoto/doomerang-tween/archetypes"
	"github.com/automoto/doomerang-tween/components"
	cfg "github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/easing"
	"github.com/automoto/doomerang-tween/props"
	"github.com/automoto/doomerang-tween/shared/tweenworld"
	"github.com/automoto/doomerang-tween/tags"
	"github.com/automoto/doomerang-tween/tween"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform adds a solid platform to space that rises and
// sinks forever.
func CreateFloatingPlatform(ecs *ecs.ECS, space *resolv.Space) (*donburi.Entry, error) {
	pc := cfg.Playground
	object := resolv.NewObject(pc.PlatformX, pc.PlatformY, pc.PlatformWidth, pc.PlatformHeight, tags.ResolvSolid, tags.ResolvPlatform)
	object.SetShape(resolv.NewRectangle(0, 0, pc.PlatformWidth, pc.PlatformHeight))
	space.Add(object)

	platform := archetypes.FloatingPlatform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	// The sine curve comes from gween so both easing sources stay in use.
	host := tweenworld.HostFor(ecs.World)
	tw, err := host.TweenEntity(platform, tweenworld.ObjectTarget{Object: object})
	if err != nil {
		return nil, fmt.Errorf("floating platform tween: %w", err)
	}
	tw.To(props.Of("y", object.Y-pc.PlatformRise), pc.PlatformPeriod,
		tween.WithEasing(easing.FromGween(ease.InOutSine)),
		tween.WithYoyo(true),
	).Loop(true).Start()
	components.Tween.SetValue(platform, components.TweenData{Tween: tw})

	return platform, nil
}
