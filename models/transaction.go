package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is created once per payment and never mutated afterwards.
// The log keeps them most-recent-first.
type Transaction struct {
	ID         int             `json:"id"`
	Merchant   string          `json:"merchant"`
	Amount     decimal.Decimal `json:"amount"`
	Roundup    decimal.Decimal `json:"roundup"`
	Charity    *string         `json:"charity"`
	Time       string          `json:"time"`
	Type       string          `json:"type"`
	Confidence int             `json:"ai_confidence"`
	Reasoning  string          `json:"ai_reasoning,omitempty"`
	CreatedAt  time.Time       `json:"-"`
}

type Account struct {
	Balance        decimal.Decimal `json:"balance"`
	MonthlyDonated decimal.Decimal `json:"monthly_donated"`
}

// Settings are the four demo toggles. Mutated only through the settings store.
type Settings struct {
	RoundupsEnabled    bool `json:"roundups_enabled"`
	AICharitySelection bool `json:"ai_charity_selection"`
	RoundToPound       bool `json:"round_to_pound"`
	MonthlyCap         bool `json:"monthly_cap"`
}

// PaymentRequest is the checkout payload. Amount is a pointer so a missing
// field (defaulted) can be told apart from an explicit zero (rejected).
type PaymentRequest struct {
	Merchant string   `json:"merchant"`
	Amount   *float64 `json:"amount"`
}

type PaymentResult struct {
	Transaction    Transaction     `json:"transaction"`
	NewBalance     decimal.Decimal `json:"new_balance"`
	MonthlyDonated decimal.Decimal `json:"monthly_donated"`
	Message        string          `json:"message"`
}

// AgeLabel renders a transaction timestamp the way the front-ends show it.
func AgeLabel(created, now time.Time) string {
	d := now.Sub(created)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < 2*time.Minute:
		return "1 minute ago"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 2*time.Hour:
		return "1 hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
