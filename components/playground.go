package components

import "github.com/yohamta/donburi"

// PlaygroundData stores the playground controls shared by every tween
type PlaygroundData struct {
	Paused    bool
	Reversed  bool
	TimeScale float64
	Status    string // Last status message shown in the HUD
}

var Playground = donburi.NewComponentType[PlaygroundData]()
