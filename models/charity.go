package models

import "github.com/shopspring/decimal"

// Charity is immutable reference data loaded once at startup.
type Charity struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CostPerImpact decimal.Decimal `json:"costPerImpact"`
	Unit          string          `json:"unit"`
	Focus         []string        `json:"focus"`
	Keywords      []string        `json:"keywords"`
	Color         string          `json:"color"`
}

type Catalogue map[string]Charity

// DefaultCharity is substituted whenever the AI names a charity we don't know.
const DefaultCharity = "Teach First"

func (c Catalogue) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// DefaultCatalogue returns the six partner charities of the demo.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		"Teach First": {
			Name:          "Teach First",
			Description:   "Places exceptional graduates in challenging schools to tackle educational inequality",
			CostPerImpact: decimal.RequireFromString("25.50"),
			Unit:          "training hours",
			Focus:         []string{"education", "books", "learning"},
			Keywords:      []string{"book", "study", "education", "academic", "university", "college", "textbook", "waterstones", "amazon"},
			Color:         "#4f46e5",
		},
		"Into University": {
			Name:          "Into University",
			Description:   "Supports young people from disadvantaged backgrounds into higher education",
			CostPerImpact: decimal.RequireFromString("15.75"),
			Unit:          "mentoring sessions",
			Focus:         []string{"education", "mentoring", "university"},
			Keywords:      []string{"university", "college", "study", "academic", "course", "tuition", "campus"},
			Color:         "#7c3aed",
		},
		"Coram Beanstalk": {
			Name:          "Coram Beanstalk",
			Description:   "Helps children who have fallen behind with their reading through volunteer support",
			CostPerImpact: decimal.RequireFromString("12.30"),
			Unit:          "reading sessions",
			Focus:         []string{"literacy", "children", "reading"},
			Keywords:      []string{"book", "read", "library", "literature", "novel", "magazine", "children", "waterstones"},
			Color:         "#059669",
		},
		"FareShare": {
			Name:          "FareShare",
			Description:   "Redistributes surplus food to charities and community groups fighting hunger",
			CostPerImpact: decimal.RequireFromString("8.50"),
			Unit:          "meals provided",
			Focus:         []string{"food", "hunger", "community"},
			Keywords:      []string{"food", "restaurant", "grocery", "supermarket", "cafe", "coffee", "lunch", "dinner", "snack", "costa", "tesco", "mcdonalds"},
			Color:         "#dc2626",
		},
		"Crisis": {
			Name:          "Crisis",
			Description:   "Works directly with homeless people to help them rebuild their lives",
			CostPerImpact: decimal.RequireFromString("18.75"),
			Unit:          "support sessions",
			Focus:         []string{"homelessness", "housing", "support"},
			Keywords:      []string{"transport", "travel", "uber", "taxi", "bus", "train", "accommodation", "hotel"},
			Color:         "#ea580c",
		},
		"Mind": {
			Name:          "Mind",
			Description:   "Provides advice and support to empower anyone experiencing a mental health problem",
			CostPerImpact: decimal.RequireFromString("22.00"),
			Unit:          "counseling hours",
			Focus:         []string{"mental health", "wellbeing", "support"},
			Keywords:      []string{"pharmacy", "health", "medical", "fitness", "gym", "wellness", "therapy", "counseling"},
			Color:         "#0891b2",
		},
	}
}
