package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goodcents/goodcents-api/models"
	"github.com/goodcents/goodcents-api/services"
)

type PaymentHandler struct {
	Payments *services.PaymentService
	Feed     *FeedHandler
}

func NewPaymentHandler(payments *services.PaymentService, feed *FeedHandler) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Feed: feed}
}

// ProcessPayment simulates one card payment and applies the roundup pipeline.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req models.PaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Payment failed: " + err.Error(),
			})
			return
		}
	}

	// The checkout page may omit either field; coerce like the demo expects.
	// An explicit non-positive amount is not a missing field and is rejected
	// by the payment service.
	if req.Merchant == "" {
		req.Merchant = "Test Store"
	}
	amount := 10.0
	if req.Amount != nil {
		amount = *req.Amount
	}

	result, err := h.Payments.ProcessPayment(c.Request.Context(), req.Merchant, amount)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidAmount) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": "Payment failed: " + err.Error(),
		})
		return
	}

	if h.Feed != nil {
		h.Feed.BroadcastTransaction(result.Transaction)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"transaction":     result.Transaction,
		"new_balance":     result.NewBalance,
		"monthly_donated": result.MonthlyDonated,
		"message":         result.Message,
	})
}
