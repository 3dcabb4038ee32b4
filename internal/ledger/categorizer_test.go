package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartax/internal/domain"
)

func TestKeywordCategorizer(t *testing.T) {
	kc := NewKeywordCategorizer(domain.BusinessRideshare)

	tests := []struct {
		name         string
		description  string
		wantCategory string
		wantStatus   domain.CategorizationStatus
	}{
		{
			name:         "single keyword hit",
			description:  "Chevron GAS purchase",
			wantCategory: "Fuel",
			wantStatus:   domain.StatusCategorizedByKeyword,
		},
		{
			name:         "multiple hits beat a single hit",
			description:  "toll and parking at the garage",
			wantCategory: "Tolls & Parking",
			wantStatus:   domain.StatusCategorizedByKeyword,
		},
		{
			name:         "common category applies to every business",
			description:  "Verizon cell phone bill",
			wantCategory: "Phone & Internet",
			wantStatus:   domain.StatusCategorizedByKeyword,
		},
		{
			name:         "no match falls back",
			description:  "something else entirely",
			wantCategory: FallbackCategory,
			wantStatus:   domain.StatusUncategorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := kc.Categorize(tc.description, decimal.NewFromInt(10))
			require.NoError(t, err)
			assert.Equal(t, tc.wantCategory, got.Category)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestKeywordCategorizer_Deterministic(t *testing.T) {
	kc := NewKeywordCategorizer(domain.BusinessConsultant)

	first, err := kc.Categorize("client dinner downtown", decimal.NewFromInt(85))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := kc.Categorize("client dinner downtown", decimal.NewFromInt(85))
		require.NoError(t, err)
		assert.Equal(t, first, again, "identical inputs must suggest identically")
	}
}

func TestKeywordCategorizer_ConfidenceScalesWithHits(t *testing.T) {
	kc := NewKeywordCategorizer(domain.BusinessEcommerce)

	one, err := kc.Categorize("shipping", decimal.NewFromInt(10))
	require.NoError(t, err)
	many, err := kc.Categorize("usps shipping postage label", decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.Greater(t, many.Confidence, one.Confidence)
	assert.LessOrEqual(t, many.Confidence, 0.9, "keyword confidence caps below the external service")
}

type stubCategorizer struct {
	suggestion domain.CategorySuggestion
	err        error
}

func (s stubCategorizer) Categorize(string, decimal.Decimal) (domain.CategorySuggestion, error) {
	return s.suggestion, s.err
}

func TestFallbackCategorizer(t *testing.T) {
	keyword := NewKeywordCategorizer(domain.BusinessRideshare)

	t.Run("uses the primary when it answers", func(t *testing.T) {
		fc := &FallbackCategorizer{
			Primary: stubCategorizer{suggestion: domain.CategorySuggestion{
				Category:   "Fuel",
				Confidence: 0.97,
				Status:     domain.StatusCategorizedByService,
			}},
			Fallback: keyword,
		}
		got, err := fc.Categorize("anything", decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCategorizedByService, got.Status)
		assert.Equal(t, 0.97, got.Confidence)
	})

	t.Run("falls back when the primary fails", func(t *testing.T) {
		fc := &FallbackCategorizer{
			Primary:  stubCategorizer{err: errors.New("service unavailable")},
			Fallback: keyword,
		}
		got, err := fc.Categorize("gas station", decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, "Fuel", got.Category)
		assert.Equal(t, domain.StatusCategorizedByKeyword, got.Status)
	})

	t.Run("works with no primary at all", func(t *testing.T) {
		fc := &FallbackCategorizer{Fallback: keyword}
		got, err := fc.Categorize("parking meter", decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, "Tolls & Parking", got.Category)
	})
}
