package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/doomerang-tween/components"
	cfg "github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/shared/tweenworld"
	"github.com/automoto/doomerang-tween/systems"
	"github.com/automoto/doomerang-tween/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundScene shows every easing curve side by side along with a
// floating platform and a spinner driven by the same tween host.
type PlaygroundScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedSettings
	once  sync.Once
}

func NewPlaygroundScene(saved *systems.SavedSettings) *PlaygroundScene {
	return &PlaygroundScene{saved: saved}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close releases the scene's tween host.
func (ps *PlaygroundScene) Close() {
	if ps.ecs == nil {
		return
	}
	tweenworld.HostFor(ps.ecs.World).Destroy()
}

func (ps *PlaygroundScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdateObjects)

	ecs.AddRenderer(cfg.Default, systems.DrawBoxes)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawSpinners)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs

	spaceEntry := factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height, cfg.Playground.SpaceCellSize, cfg.Playground.SpaceCellSize)
	space := components.Space.Get(spaceEntry)

	if err := factory.CreateEasingRows(ps.ecs); err != nil {
		log.Fatalf("Failed to create easing rows: %v", err)
	}
	if _, err := factory.CreateFloatingPlatform(ps.ecs, space.Space); err != nil {
		log.Fatalf("Failed to create floating platform: %v", err)
	}
	if _, err := factory.CreateSpinner(ps.ecs); err != nil {
		log.Fatalf("Failed to create spinner: %v", err)
	}

	systems.ApplySavedSettings(ps.ecs, ps.saved)
}
