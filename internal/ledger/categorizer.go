package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// Categorizer suggests a category for an expense description. The
// suggestion never participates in the tax math; it only annotates ledger
// entries.
type Categorizer interface {
	Categorize(description string, amount decimal.Decimal) (domain.CategorySuggestion, error)
}

// KeywordCategorizer is the deterministic fallback categorizer: it scores
// each category in the business type's taxonomy by the number of keyword
// hits in the description.
type KeywordCategorizer struct {
	categories []Category
}

// NewKeywordCategorizer creates a keyword categorizer for a business type.
func NewKeywordCategorizer(business domain.BusinessType) *KeywordCategorizer {
	return &KeywordCategorizer{categories: CategoriesFor(business)}
}

// Categorize picks the category with the most keyword matches. Ties go to
// the earlier category in the taxonomy, so identical inputs always produce
// identical suggestions. Confidence scales with the number of matched
// keywords, capped at 0.9; only the external service reports higher.
func (kc *KeywordCategorizer) Categorize(description string, _ decimal.Decimal) (domain.CategorySuggestion, error) {
	text := strings.ToLower(description)

	best := ""
	bestHits := 0
	for _, cat := range kc.categories {
		hits := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = cat.Name
			bestHits = hits
		}
	}

	if bestHits == 0 {
		return domain.CategorySuggestion{
			Category:   FallbackCategory,
			Confidence: 0.0,
			Status:     domain.StatusUncategorized,
		}, nil
	}

	confidence := 0.5 + 0.2*float64(bestHits-1)
	if confidence > 0.9 {
		confidence = 0.9
	}
	return domain.CategorySuggestion{
		Category:   best,
		Confidence: confidence,
		Status:     domain.StatusCategorizedByKeyword,
	}, nil
}

// FallbackCategorizer consults a primary categorizer (typically a remote
// inference service, which may be absent or failing) and falls back to a
// deterministic one on any error. Best-effort by contract: it never returns
// an error itself.
type FallbackCategorizer struct {
	Primary  Categorizer
	Fallback Categorizer
}

// Categorize tries the primary first; any failure routes to the fallback.
func (fc *FallbackCategorizer) Categorize(description string, amount decimal.Decimal) (domain.CategorySuggestion, error) {
	if fc.Primary != nil {
		if s, err := fc.Primary.Categorize(description, amount); err == nil {
			return s, nil
		}
	}
	return fc.Fallback.Categorize(description, amount)
}
