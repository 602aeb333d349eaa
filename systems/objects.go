package systems

import (
	"github.com/automoto/doomerang-tween/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every collision object.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
