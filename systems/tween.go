package systems

import (
	"github.com/automoto/doomerang-tween/shared/tweenworld"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every tween of the world by one frame.
func UpdateTweens(ecs *ecs.ECS) {
	tweenworld.HostFor(ecs.World).Tick(1 / float64(ebiten.TPS()))
}

// ActiveTweens returns how many tweens the world's scheduler is advancing.
func ActiveTweens(ecs *ecs.ECS) int {
	s, err := tweenworld.HostFor(ecs.World).Scheduler()
	if err != nil {
		return 0
	}
	return s.Len()
}
