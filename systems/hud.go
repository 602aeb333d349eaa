package systems

import (
	"fmt"

	cfg "github.com/automoto/doomerang-tween/config"
	"github.com/automoto/doomerang-tween/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudHeight = 24
	hudMargin = 8
)

const hudHelp = "space pause   r reverse   up/down speed   x remove row   s save"

// DrawHUD renders the control state along the top edge and the key help
// along the bottom edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	pg := GetOrCreatePlayground(ecs)
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)

	vector.DrawFilledRect(screen, 0, 0, width, hudHeight, cfg.DarkGray, false)

	direction := "forward"
	if pg.Reversed {
		direction = "reversed"
	}
	status := fmt.Sprintf("speed x%.2f   %s   tweens %d", pg.TimeScale, direction, ActiveTweens(ecs))
	if pg.Paused {
		status += "   PAUSED"
	}
	if pg.Status != "" {
		status += "   [" + pg.Status + "]"
	}
	text.Draw(screen, status, fonts.Title.Get(), hudMargin, hudHeight-hudMargin+2, cfg.Playground.HUDColor)

	text.Draw(screen, hudHelp, fonts.Regular.Get(), hudMargin, int(height)-hudMargin, cfg.Playground.TextColor)
}
