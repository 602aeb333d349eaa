package components

import (
	"github.com/automoto/doomerang-tween/tween"
	"github.com/yohamta/donburi"
)

// TweenData holds the tween that animates an entity. The tween is owned by
// the world's tween host; this is only a handle for the playground controls.
type TweenData struct {
	*tween.Tween
}

var Tween = donburi.NewComponentType[TweenData]()
