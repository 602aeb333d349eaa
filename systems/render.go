package systems

import (
	"image/color"

	"github.com/automoto/doomerang-tween/components"
	cfg "github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/fonts"
	"github.com/automoto/doomerang-tween/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spinnerImage *ebiten.Image
var spinnerDrawOp = &ebiten.DrawImageOptions{}

// DrawBoxes renders each easing row: its label, its track and the box.
func DrawBoxes(ecs *ecs.ECS, screen *ebiten.Image) {
	pc := cfg.Playground
	face := fonts.Regular.Get()

	tags.Box.Each(ecs.World, func(entry *donburi.Entry) {
		box := components.Box.Get(entry)
		body := box.Body

		text.Draw(screen, box.Name, face, int(box.StartX-pc.LabelWidth), int(body.Y+pc.BoxSize), pc.TextColor)

		if cfg.Debug.ShowTracks {
			vector.DrawFilledRect(screen,
				float32(box.StartX), float32(body.Y+pc.BoxSize/2-1),
				float32(box.EndX-box.StartX+pc.BoxSize), 2,
				pc.TrackColor, false)
		}

		clr := pc.BoxColor
		clr.A = uint8(clamp01(body.Alpha) * 255)
		vector.DrawFilledRect(screen,
			float32(body.X), float32(body.Y),
			float32(pc.BoxSize), float32(pc.BoxSize),
			premultiply(clr), false)

		if cfg.Debug.ShowState {
			if tw := components.Tween.Get(entry).Tween; tw != nil {
				text.Draw(screen, tw.State().String(), fonts.Mono.Get(), int(box.EndX+pc.BoxSize+4), int(body.Y+pc.BoxSize), pc.TextColor)
			}
		}
	})
}

// DrawPlatforms renders the floating platforms at their collision bounds.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.FloatingPlatform.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.Playground.PlatformColor, false)
	})
}

// DrawSpinners renders each spinner rotated by its interpolated orientation.
func DrawSpinners(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Spinner.Each(ecs.World, func(entry *donburi.Entry) {
		spinner := components.Spinner.Get(entry)
		size := int(spinner.Size)
		if spinnerImage == nil || spinnerImage.Bounds().Dx() != size {
			spinnerImage = ebiten.NewImage(size, size)
			spinnerImage.Fill(cfg.Playground.SpinnerColor)
		}

		spinnerDrawOp.GeoM.Reset()
		spinnerDrawOp.GeoM.Translate(-spinner.Size/2, -spinner.Size/2)
		spinnerDrawOp.GeoM.Rotate(spinner.Body.Angle())
		spinnerDrawOp.GeoM.Translate(spinner.X, spinner.Y)
		screen.DrawImage(spinnerImage, spinnerDrawOp)
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// premultiply converts a straight-alpha color for vector drawing.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
