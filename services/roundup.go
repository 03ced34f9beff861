package services

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount rejects a payment before any state is touched.
var ErrInvalidAmount = errors.New("charge amount must be a positive, finite value")

// MonthlyCapLimit caps cumulative round-up donations when the cap toggle is on.
var MonthlyCapLimit = decimal.RequireFromString("10.00")

var four = decimal.NewFromInt(4)

// CalculateRoundup returns the distance from amount up to the next boundary:
// the next whole pound when roundToPound is set, otherwise the next 25p.
// An amount already on a boundary rounds up by zero.
func CalculateRoundup(amount decimal.Decimal, roundToPound bool) decimal.Decimal {
	var boundary decimal.Decimal
	if roundToPound {
		boundary = amount.Ceil()
	} else {
		boundary = amount.Mul(four).Ceil().Div(four)
	}
	return boundary.Sub(amount).Round(2)
}

// ApplyMonthlyCap clamps roundup so the monthly total never exceeds the cap.
func ApplyMonthlyCap(roundup, monthlyDonated decimal.Decimal) decimal.Decimal {
	if monthlyDonated.Add(roundup).LessThanOrEqual(MonthlyCapLimit) {
		return roundup
	}
	remaining := MonthlyCapLimit.Sub(monthlyDonated)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining.Round(2)
}
