package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/goodcents/goodcents-api/models"
	"github.com/goodcents/goodcents-api/utils"
)

// FeedHandler pushes each new transaction to connected bank front-ends so the
// transaction list updates without polling.
type FeedHandler struct {
	M *melody.Melody
}

func NewFeedHandler() *FeedHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 64 * 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		utils.Info("🔌 Feed client connected from %s", s.Request.RemoteAddr)
	})
	m.HandleDisconnect(func(s *melody.Session) {
		utils.Info("🔌 Feed client disconnected")
	})
	m.HandleError(func(s *melody.Session, err error) {
		utils.Warn("WebSocket error: %v", err)
	})

	return &FeedHandler{M: m}
}

// HandleWS upgrades the request to a WebSocket session.
func (h *FeedHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		utils.Warn("Failed to upgrade websocket: %v", err)
	}
}

// BroadcastTransaction sends one new transaction to every listener.
func (h *FeedHandler) BroadcastTransaction(tx models.Transaction) {
	payload, err := json.Marshal(gin.H{"type": "transaction", "transaction": tx})
	if err != nil {
		utils.Warn("Failed to encode feed message: %v", err)
		return
	}
	if err := h.M.Broadcast(payload); err != nil {
		utils.Warn("Error broadcasting transaction %d: %v", tx.ID, err)
	}
}
