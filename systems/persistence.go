package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/doomerang-tween/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the playground controls stored on disk
type SavedSettings struct {
	TimeScale float64 `json:"timeScale"`
	Paused    bool    `json:"paused"`
	Reversed  bool    `json:"reversed"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-tween",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the controls from the PlaygroundData component
func SaveCurrentSettings(pg *components.PlaygroundData) error {
	return SaveSettings(&SavedSettings{
		TimeScale: pg.TimeScale,
		Paused:    pg.Paused,
		Reversed:  pg.Reversed,
	})
}

// ApplySavedSettings applies loaded settings to the playground tweens
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	pg := GetOrCreatePlayground(e)
	if saved.TimeScale > 0 {
		SetTimeScale(e, saved.TimeScale)
	}
	if saved.Reversed != pg.Reversed {
		pg.Reversed = saved.Reversed
		restartReversed(e, pg)
	}
	pg.Paused = saved.Paused
	applyPause(e, pg.Paused)
	pg.Status = "settings loaded"
}
