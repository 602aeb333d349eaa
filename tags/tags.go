package tags

import "github.com/yohamta/donburi"

var (
	Box              = donburi.NewTag().SetName("Box")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Spinner          = donburi.NewTag().SetName("Spinner")
)

// Resolv tags for collision objects
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
)
