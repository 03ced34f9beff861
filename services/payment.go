package services

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/goodcents/goodcents-api/models"
	"github.com/goodcents/goodcents-api/utils"
)

// PaymentService runs the decision pipeline for one payment:
// validate → roundup → charity selection → ledger apply. Selection is the
// only step that can block, so it runs before the ledger lock is taken.
type PaymentService struct {
	ledger   *Ledger
	settings *SettingsStore
	local    *LocalSelector
	remote   Selector
}

func NewPaymentService(ledger *Ledger, settings *SettingsStore, local *LocalSelector, remote Selector) *PaymentService {
	return &PaymentService{
		ledger:   ledger,
		settings: settings,
		local:    local,
		remote:   remote,
	}
}

// ProcessPayment charges the account and works out the roundup donation.
// Returns ErrInvalidAmount for non-positive or non-finite amounts; no state
// is touched in that case.
func (s *PaymentService) ProcessPayment(ctx context.Context, merchant string, amount float64) (models.PaymentResult, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return models.PaymentResult{}, ErrInvalidAmount
	}
	charge := decimal.NewFromFloat(amount)

	settings := s.settings.Get()

	var roundup decimal.Decimal
	var sel *Selection
	if settings.RoundupsEnabled {
		roundup = CalculateRoundup(charge, settings.RoundToPound)

		picked := s.selectCharity(ctx, settings, merchant, charge)
		sel = &picked
	} else {
		roundup = decimal.Zero
		utils.Debug("[Payment] roundups disabled, skipping charity selection")
	}

	tx := s.ledger.Apply(merchant, charge, roundup, sel, settings.MonthlyCap)
	account := s.ledger.Snapshot()

	message := "Payment processed! No roundup applied"
	if tx.Roundup.IsPositive() && tx.Charity != nil {
		message = fmt.Sprintf("Payment processed! £%s donated to %s", tx.Roundup.StringFixed(2), *tx.Charity)
	}

	charity := "-"
	if tx.Charity != nil {
		charity = *tx.Charity
	}
	utils.LogPayment(merchant, tx.Amount.StringFixed(2), tx.Roundup.StringFixed(2), account.Balance.StringFixed(2), charity)

	return models.PaymentResult{
		Transaction:    tx,
		NewBalance:     account.Balance,
		MonthlyDonated: account.MonthlyDonated,
		Message:        message,
	}, nil
}

func (s *PaymentService) selectCharity(ctx context.Context, settings models.Settings, merchant string, amount decimal.Decimal) Selection {
	if settings.AICharitySelection && s.remote != nil {
		return s.remote.Select(ctx, merchant, amount)
	}
	return s.local.Select(ctx, merchant, amount)
}

// Snapshot exposes the account for the read endpoints.
func (s *PaymentService) Snapshot() models.Account {
	return s.ledger.Snapshot()
}

// TransactionLog returns the ordered log, most recent first.
func (s *PaymentService) TransactionLog() []models.Transaction {
	return s.ledger.Transactions()
}
