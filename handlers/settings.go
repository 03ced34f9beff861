package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goodcents/goodcents-api/services"
)

type SettingsHandler struct {
	Store *services.SettingsStore
}

func NewSettingsHandler(store *services.SettingsStore) *SettingsHandler {
	return &SettingsHandler{Store: store}
}

// GetSettings returns the current toggles.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.Store.Get()})
}

// UpdateSettings applies a partial update. Unknown keys are dropped, not
// rejected; an empty body just echoes the current settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	if c.Request.ContentLength <= 0 {
		c.JSON(http.StatusOK, gin.H{"settings": h.Store.Get()})
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid settings data: " + err.Error(),
		})
		return
	}

	settings := h.Store.Update(patch)
	c.JSON(http.StatusOK, gin.H{"status": "success", "settings": settings})
}
