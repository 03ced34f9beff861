package services

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodcents/goodcents-api/models"
)

// Ledger owns all mutable account state for the demo. Every mutation runs
// under one mutex so concurrent requests cannot duplicate ids or lose
// updates. Nothing is persisted: a process restart loses everything.
type Ledger struct {
	mu           sync.Mutex
	account      models.Account
	transactions []models.Transaction
	nextID       int
}

func NewLedger(opening models.Account, seed []models.Transaction) *Ledger {
	maxID := 0
	for _, tx := range seed {
		if tx.ID > maxID {
			maxID = tx.ID
		}
	}
	txs := make([]models.Transaction, len(seed))
	copy(txs, seed)
	return &Ledger{
		account:      opening,
		transactions: txs,
		nextID:       maxID + 1,
	}
}

// Apply records one payment: allocates the next id, prepends the transaction,
// decrements the balance by the charge amount and adds any roundup to the
// monthly total. The balance deliberately does not move for the roundup;
// that matches how the product currently presents donations.
// The monthly-cap clamp runs here, inside the critical section, so two
// in-flight payments cannot overshoot the cap together.
func (l *Ledger) Apply(merchant string, amount, roundup decimal.Decimal, sel *Selection, capEnabled bool) models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	if capEnabled && roundup.IsPositive() {
		roundup = ApplyMonthlyCap(roundup, l.account.MonthlyDonated)
	}

	tx := models.Transaction{
		ID:        l.nextID,
		Merchant:  merchant,
		Amount:    amount.Round(2),
		Roundup:   roundup,
		Time:      "Just now",
		Type:      "purchase",
		Reasoning: "No charity donation",
		CreatedAt: time.Now(),
	}
	if sel != nil {
		charity := sel.Charity
		tx.Charity = &charity
		tx.Confidence = sel.Confidence
		tx.Reasoning = sel.Reasoning
	}

	l.nextID++
	l.transactions = append([]models.Transaction{tx}, l.transactions...)
	l.account.Balance = l.account.Balance.Sub(amount).Round(2)
	if roundup.IsPositive() {
		l.account.MonthlyDonated = l.account.MonthlyDonated.Add(roundup).Round(2)
	}

	return tx
}

// Snapshot returns the account totals at this instant.
func (l *Ledger) Snapshot() models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.account
}

// MonthlyDonated reads the running donation total.
func (l *Ledger) MonthlyDonated() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.account.MonthlyDonated
}

// Transactions returns a copy of the log, most recent first, with age labels
// rendered against the current clock.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	for i := range out {
		if !out[i].CreatedAt.IsZero() {
			out[i].Time = models.AgeLabel(out[i].CreatedAt, now)
		}
	}
	return out
}
