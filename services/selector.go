package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goodcents/goodcents-api/models"
)

// Selection is the outcome of charity matching for one payment.
type Selection struct {
	Charity    string `json:"charity"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// Selector picks a charity for a merchant. Implementations never fail:
// the remote selector degrades to the local one internally.
type Selector interface {
	Select(ctx context.Context, merchant string, amount decimal.Decimal) Selection
}

type keywordRule struct {
	keywords   []string
	charity    string
	confidence int
	reason     string
}

// Checked in order; the first matching group wins. Education is deliberately
// first so merchants like "Campus Cafe Bookshop" resolve to education.
var keywordRules = []keywordRule{
	{[]string{"book", "amazon", "waterstones", "study", "education"}, "Teach First", 89, "Education-related purchase"},
	{[]string{"coffee", "food", "restaurant", "tesco", "cafe"}, "FareShare", 87, "Food-related purchase"},
	{[]string{"uber", "transport", "travel", "taxi"}, "Crisis", 85, "Transport-related purchase"},
	{[]string{"gym", "fitness", "health", "pharmacy"}, "Mind", 83, "Health/wellness-related purchase"},
}

// LocalSelector matches merchant names against fixed keyword groups.
// Always available; it is the fallback for every remote failure.
type LocalSelector struct{}

func NewLocalSelector() *LocalSelector {
	return &LocalSelector{}
}

func (s *LocalSelector) Select(_ context.Context, merchant string, _ decimal.Decimal) Selection {
	lower := strings.ToLower(merchant)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return Selection{Charity: rule.charity, Confidence: rule.confidence, Reasoning: rule.reason}
			}
		}
	}
	return Selection{Charity: models.DefaultCharity, Confidence: 75, Reasoning: "General education support"}
}
