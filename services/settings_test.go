package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goodcents/goodcents-api/models"
)

func TestSettingsUpdateAppliesKnownKeys(t *testing.T) {
	store := NewSettingsStore(models.Settings{RoundupsEnabled: true, RoundToPound: true})

	got := store.Update(map[string]interface{}{
		"round_to_pound": false,
		"monthly_cap":    true,
	})

	assert.False(t, got.RoundToPound)
	assert.True(t, got.MonthlyCap)
	assert.True(t, got.RoundupsEnabled)
}

func TestSettingsUpdateIgnoresUnknownKeys(t *testing.T) {
	initial := models.Settings{RoundupsEnabled: true, AICharitySelection: true, RoundToPound: true}
	store := NewSettingsStore(initial)

	got := store.Update(map[string]interface{}{
		"overdraft_limit": true,
		"theme":           "dark",
	})

	assert.Equal(t, initial, got)
}

func TestSettingsUpdateIgnoresNonBooleanValues(t *testing.T) {
	store := NewSettingsStore(models.Settings{RoundupsEnabled: true})

	got := store.Update(map[string]interface{}{"roundups_enabled": "no"})

	assert.True(t, got.RoundupsEnabled)
}

func TestSettingsGetReturnsSnapshot(t *testing.T) {
	store := NewSettingsStore(models.Settings{MonthlyCap: true})
	assert.True(t, store.Get().MonthlyCap)
	assert.False(t, store.Get().RoundupsEnabled)
}
