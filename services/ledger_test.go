package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodcents/goodcents-api/models"
)

func newTestLedger(balance, donated string) *Ledger {
	return NewLedger(models.Account{
		Balance:        decimal.RequireFromString(balance),
		MonthlyDonated: decimal.RequireFromString(donated),
	}, nil)
}

func TestLedgerApplyDecrementsBalanceByChargeOnly(t *testing.T) {
	l := newTestLedger("100.00", "0.00")
	sel := Selection{Charity: "FareShare", Confidence: 87, Reasoning: "Food-related purchase"}

	tx := l.Apply("Tesco Express", decimal.RequireFromString("8.47"), decimal.RequireFromString("0.53"), &sel, false)

	account := l.Snapshot()
	// The roundup raises the monthly total without leaving the balance.
	assert.Equal(t, "91.53", account.Balance.StringFixed(2))
	assert.Equal(t, "0.53", account.MonthlyDonated.StringFixed(2))
	require.NotNil(t, tx.Charity)
	assert.Equal(t, "FareShare", *tx.Charity)
}

func TestLedgerApplyNoRoundupLeavesMonthlyTotal(t *testing.T) {
	l := newTestLedger("50.00", "1.59")

	tx := l.Apply("Test Store", decimal.NewFromInt(10), decimal.Zero, nil, false)

	account := l.Snapshot()
	assert.Equal(t, "40.00", account.Balance.StringFixed(2))
	assert.Equal(t, "1.59", account.MonthlyDonated.StringFixed(2))
	assert.Nil(t, tx.Charity)
	assert.Equal(t, 0, tx.Confidence)
	assert.Equal(t, "No charity donation", tx.Reasoning)
}

func TestLedgerIDsAreSequentialAndLogPrepends(t *testing.T) {
	l := newTestLedger("100.00", "0.00")

	first := l.Apply("A", decimal.NewFromInt(1), decimal.Zero, nil, false)
	second := l.Apply("B", decimal.NewFromInt(2), decimal.Zero, nil, false)
	third := l.Apply("C", decimal.NewFromInt(3), decimal.Zero, nil, false)

	assert.Equal(t, first.ID+1, second.ID)
	assert.Equal(t, second.ID+1, third.ID)

	log := l.Transactions()
	require.Len(t, log, 3)
	assert.Equal(t, "C", log[0].Merchant)
	assert.Equal(t, "A", log[2].Merchant)
}

func TestLedgerSeedSetsNextID(t *testing.T) {
	seed := []models.Transaction{{ID: 4, Merchant: "Costa Coffee"}, {ID: 1, Merchant: "Uber"}}
	l := NewLedger(models.Account{Balance: decimal.NewFromInt(100)}, seed)

	tx := l.Apply("New", decimal.NewFromInt(1), decimal.Zero, nil, false)
	assert.Equal(t, 5, tx.ID)
}

func TestLedgerCapClampInsideApply(t *testing.T) {
	l := newTestLedger("100.00", "9.80")
	sel := Selection{Charity: "FareShare", Confidence: 87, Reasoning: "Food-related purchase"}

	tx := l.Apply("Costa Coffee", decimal.RequireFromString("4.50"), decimal.RequireFromString("0.50"), &sel, true)

	assert.Equal(t, "0.20", tx.Roundup.StringFixed(2))
	assert.Equal(t, "10.00", l.Snapshot().MonthlyDonated.StringFixed(2))
}

func TestLedgerSnapshotIsIdempotent(t *testing.T) {
	l := newTestLedger("2847.93", "1.59")

	first := l.Snapshot()
	second := l.Snapshot()

	assert.True(t, first.Balance.Equal(second.Balance))
	assert.True(t, first.MonthlyDonated.Equal(second.MonthlyDonated))
}

func TestLedgerBalanceMayGoNegative(t *testing.T) {
	l := newTestLedger("5.00", "0.00")

	l.Apply("Big Spend", decimal.NewFromInt(20), decimal.Zero, nil, false)

	assert.Equal(t, "-15.00", l.Snapshot().Balance.StringFixed(2))
}
