package services

import (
	"sync"

	"github.com/goodcents/goodcents-api/models"
	"github.com/goodcents/goodcents-api/utils"
)

// SettingsStore holds the demo toggles in memory. Updates are partial: only
// recognized boolean keys are applied, everything else is dropped silently.
type SettingsStore struct {
	mu      sync.RWMutex
	current models.Settings
}

func NewSettingsStore(initial models.Settings) *SettingsStore {
	return &SettingsStore{current: initial}
}

func (s *SettingsStore) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies recognized keys from patch and returns the new snapshot.
// Unknown keys and non-boolean values are not errors.
func (s *SettingsStore) Update(patch map[string]interface{}) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, raw := range patch {
		value, ok := raw.(bool)
		if !ok {
			utils.Debug("[Settings] ignoring non-boolean value for %q", key)
			continue
		}
		switch key {
		case "roundups_enabled":
			s.current.RoundupsEnabled = value
		case "ai_charity_selection":
			s.current.AICharitySelection = value
		case "round_to_pound":
			s.current.RoundToPound = value
		case "monthly_cap":
			s.current.MonthlyCap = value
		default:
			utils.Debug("[Settings] ignoring unknown key %q", key)
			continue
		}
		utils.Info("[Settings] %s = %v", key, value)
	}
	return s.current
}
