package main

import (
	"image"
	"log"

	"github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/fonts"
	"github.com/automoto/doomerang-tween/scenes"
	"github.com/automoto/doomerang-tween/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlaygroundScene(saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}

	game := NewGame(saved)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	if closer, ok := game.scene.(interface{ Close() }); ok {
		closer.Close()
	}
}
