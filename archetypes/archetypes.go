package archetypes

import (
	"github.com/automoto/doomerang-tween/components"
	cfg "github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	EasingBox = newArchetype(
		tags.Box,
		components.Box,
		components.Tween,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Spinner = newArchetype(
		tags.Spinner,
		components.Spinner,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Playground = newArchetype(
		components.Playground,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
