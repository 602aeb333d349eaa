package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer of the playground.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// TweenConfig contains the timing used by the easing rows
type TweenConfig struct {
	Duration      float64 // Seconds for one pass across the row
	RowDelay      float64 // Start offset added per row
	RepeatDelay   float64 // Pause at each end of the row
	MinTimeScale  float64
	MaxTimeScale  float64
	TimeScaleStep float64
}

// PlaygroundConfig contains layout values for the playground scene
type PlaygroundConfig struct {
	// Easing rows
	Columns    int     // Rows are split into this many columns
	MarginX    float64 // Left margin of the first column
	MarginY    float64 // Top margin of the first row
	LabelWidth float64 // Space reserved for the curve name
	TrackWidth float64 // Distance a box travels
	RowHeight  float64
	BoxSize    float64

	// Floating platform
	PlatformX      float64
	PlatformY      float64
	PlatformWidth  float64
	PlatformHeight float64
	PlatformRise   float64 // Pixels the platform rises before turning back
	PlatformPeriod float64 // Seconds for one rise

	// Spinner
	SpinnerX    float64
	SpinnerY    float64
	SpinnerSize float64
	SpinnerTurn float64 // Degrees per half turn

	SpaceCellSize int

	BoxColor      color.RGBA
	PlatformColor color.RGBA
	SpinnerColor  color.RGBA
	TrackColor    color.RGBA
	TextColor     color.RGBA
	HUDColor      color.RGBA
}

// DebugConfig contains debug options
type DebugConfig struct {
	ShowTracks bool // Draw the track behind each box
	ShowState  bool // Print tween state next to each row
}

// Global configuration instances
var C *Config
var Tween TweenConfig
var Playground PlaygroundConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "doomerang tween playground",
	}

	Tween = TweenConfig{
		Duration:      1.5,
		RowDelay:      0.05,
		RepeatDelay:   0.25,
		MinTimeScale:  0.25,
		MaxTimeScale:  4.0,
		TimeScaleStep: 0.25,
	}

	Playground = PlaygroundConfig{
		Columns:    3,
		MarginX:    10,
		MarginY:    40,
		LabelWidth: 90,
		TrackWidth: 190,
		RowHeight:  14,
		BoxSize:    10,

		PlatformX:      760,
		PlatformY:      470,
		PlatformWidth:  96,
		PlatformHeight: 16,
		PlatformRise:   128,
		PlatformPeriod: 2,

		SpinnerX:    808,
		SpinnerY:    250,
		SpinnerSize: 48,
		SpinnerTurn: 180,

		SpaceCellSize: 16,

		BoxColor:      LightBlue,
		PlatformColor: Orange,
		SpinnerColor:  Magenta,
		TrackColor:    DarkGray,
		TextColor:     White,
		HUDColor:      Yellow,
	}

	Debug = DebugConfig{
		ShowTracks: true,
		ShowState:  false,
	}
}
