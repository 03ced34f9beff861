package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goodcents/goodcents-api/models"
	"github.com/goodcents/goodcents-api/services"
)

type AccountHandler struct {
	Payments  *services.PaymentService
	Catalogue models.Catalogue
}

func NewAccountHandler(payments *services.PaymentService, catalogue models.Catalogue) *AccountHandler {
	return &AccountHandler{Payments: payments, Catalogue: catalogue}
}

// GetAccount returns the current balance and monthly donation total.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	c.JSON(http.StatusOK, h.Payments.Snapshot())
}

// GetTransactions returns the transaction log, most recent first.
func (h *AccountHandler) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transactions": h.Payments.TransactionLog()})
}

// GetCharities returns the immutable charity catalogue.
func (h *AccountHandler) GetCharities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"charities": h.Catalogue})
}
