// Package playback persists playback preferences for animation demos
// and tools across runs, using the cross-platform gdata store.
package playback

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the persisted playback preferences. They are global,
// not bound to a particular animation set.
type Settings struct {
	// Speed is the playback speed multiplier, clamped to 0.1 ~ 4.0.
	Speed float64 `yaml:"speed"`

	// Paused starts playback paused.
	Paused bool `yaml:"paused"`

	// ShowHelp shows the key-binding help overlay.
	ShowHelp bool `yaml:"showHelp"`

	// LastPage restores the last viewed page of a paged demo.
	LastPage int `yaml:"lastPage"`
}

// DefaultSettings returns the default playback preferences.
func DefaultSettings() *Settings {
	return &Settings{
		Speed:    1.0,
		Paused:   false,
		ShowHelp: true,
		LastPage: 0,
	}
}

// Storage location inside the gdata store.
const (
	settingsObject   = "playback"
	settingsProperty = "global"
)

// SettingsManager loads and saves playback settings. With a nil gdata
// manager it runs in degraded mode: settings live in memory only and
// Save is a silent no-op.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// NewSettingsManager creates a settings manager and tries to load
// previously saved settings.
//
// Parameters:
//   - gdataManager: the gdata store; may be nil for degraded mode
//
// Returns:
//   - *SettingsManager: the manager, always usable
//   - error: a load error, for logging; the manager falls back to
//     defaults and is still returned
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[PlaybackSettings] Warning: failed to load settings: %v (using defaults)", err)
		return sm, err
	}
	return sm, nil
}

// Load reads settings from the gdata store. A nil manager or a
// missing entry leaves the defaults in place.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load playback settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal playback settings: %w", err)
	}

	loaded.Speed = clampSpeed(loaded.Speed)
	sm.settings = &loaded
	return nil
}

// Save writes the current settings to the gdata store. In degraded
// mode (nil manager) it does nothing and reports no error.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal playback settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save playback settings: %w", err)
	}
	return nil
}

// GetSettings returns the current in-memory settings.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetSpeed sets the playback speed multiplier, clamped to 0.1 ~ 4.0.
// Only the in-memory settings change; call Save to persist.
func (sm *SettingsManager) SetSpeed(speed float64) {
	sm.settings.Speed = clampSpeed(speed)
}

// SetPaused records whether playback starts paused. Only the
// in-memory settings change; call Save to persist.
func (sm *SettingsManager) SetPaused(paused bool) {
	sm.settings.Paused = paused
}

// SetShowHelp records whether the help overlay is visible. Only the
// in-memory settings change; call Save to persist.
func (sm *SettingsManager) SetShowHelp(show bool) {
	sm.settings.ShowHelp = show
}

// SetLastPage records the last viewed page. Only the in-memory
// settings change; call Save to persist.
func (sm *SettingsManager) SetLastPage(page int) {
	if page < 0 {
		page = 0
	}
	sm.settings.LastPage = page
}

// clampSpeed keeps the speed multiplier in a usable range; 0 (an
// unset YAML field) resolves to normal speed.
func clampSpeed(speed float64) float64 {
	if speed == 0 {
		return 1.0
	}
	if speed < 0.1 {
		return 0.1
	}
	if speed > 4.0 {
		return 4.0
	}
	return speed
}
