package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical playground action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPause
	ActionReverse
	ActionFaster
	ActionSlower
	ActionRemoveRow
	ActionSave
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionReverse: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionFaster: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionSlower: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionRemoveRow: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyDelete},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionSave: {
				Keys: []ebiten.Key{ebiten.KeyS},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
		},
	}
}
