package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_ExactSum(t *testing.T) {
	amounts := []string{"0", "0.01", "1.00", "9119.411", "100.01", "12345.67", "0.07", "-5.25"}
	counts := []int{0, 1, 2, 4, 12}

	for _, amtStr := range amounts {
		amount := decimal.RequireFromString(amtStr)
		expected := amount.Round(2)
		if expected.IsNegative() {
			expected = decimal.Zero
		}
		for _, n := range counts {
			for _, weighted := range []bool{false, true} {
				out := Allocate(amount, n, weighted)
				require.Len(t, out, n, "amount=%s n=%d", amtStr, n)
				if n == 0 {
					continue
				}
				sum := decimal.Zero
				for _, a := range out {
					sum = sum.Add(a)
				}
				assert.True(t, sum.Equal(expected), "amount=%s n=%d weighted=%v: sum %s != %s", amtStr, n, weighted, sum, expected)
			}
		}
	}
}

func TestAllocate_EqualSplitRemainderGoesToTheEnd(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		n        int
		expected []string
	}{
		{
			name:     "one remainder cent lands on the last installment",
			amount:   "1.00",
			n:        3,
			expected: []string{"0.33", "0.33", "0.34"},
		},
		{
			name:     "two remainder cents walk backward from the end",
			amount:   "1.01",
			n:        3,
			expected: []string{"0.33", "0.34", "0.34"},
		},
		{
			name:     "tiny amount",
			amount:   "0.07",
			n:        3,
			expected: []string{"0.02", "0.02", "0.03"},
		},
		{
			name:     "even split has no remainder",
			amount:   "100.00",
			n:        4,
			expected: []string{"25.00", "25.00", "25.00", "25.00"},
		},
		{
			name:     "single installment takes everything",
			amount:   "42.37",
			n:        1,
			expected: []string{"42.37"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Allocate(decimal.RequireFromString(tc.amount), tc.n, false)
			require.Len(t, out, len(tc.expected))
			for i, want := range tc.expected {
				assert.True(t, out[i].Equal(decimal.RequireFromString(want)), "installment %d: want %s, got %s", i, want, out[i])
			}
		})
	}
}

func TestAllocate_WeightedFourInstallments(t *testing.T) {
	t.Run("exact 30/30/20/20 split", func(t *testing.T) {
		out := Allocate(decimal.NewFromInt(100), 4, true)
		expected := []string{"30.00", "30.00", "20.00", "20.00"}
		for i, want := range expected {
			assert.True(t, out[i].Equal(decimal.RequireFromString(want)), "installment %d: want %s, got %s", i, want, out[i])
		}
	})

	t.Run("remainder cent lands on the last installment", func(t *testing.T) {
		out := Allocate(decimal.RequireFromString("100.01"), 4, true)
		expected := []string{"30.00", "30.00", "20.00", "20.01"}
		for i, want := range expected {
			assert.True(t, out[i].Equal(decimal.RequireFromString(want)), "installment %d: want %s, got %s", i, want, out[i])
		}
	})

	t.Run("weighting is ignored for other installment counts", func(t *testing.T) {
		out := Allocate(decimal.NewFromInt(100), 5, true)
		for i, a := range out {
			assert.True(t, a.Equal(decimal.NewFromInt(20)), "installment %d: want equal split 20.00, got %s", i, a)
		}
	})
}

func TestAllocate_EdgeCases(t *testing.T) {
	t.Run("zero installments", func(t *testing.T) {
		assert.Nil(t, Allocate(decimal.NewFromInt(100), 0, false))
	})

	t.Run("zero amount yields all zeros", func(t *testing.T) {
		out := Allocate(decimal.Zero, 4, false)
		require.Len(t, out, 4)
		for _, a := range out {
			assert.True(t, a.IsZero())
		}
	})

	t.Run("negative amount floors to zero", func(t *testing.T) {
		out := Allocate(decimal.NewFromInt(-50), 4, false)
		require.Len(t, out, 4)
		for _, a := range out {
			assert.True(t, a.IsZero())
		}
	})

	t.Run("cent rounding is half-up", func(t *testing.T) {
		// 10.005 rounds to 1001 cents.
		out := Allocate(decimal.RequireFromString("10.005"), 1, false)
		assert.True(t, out[0].Equal(decimal.RequireFromString("10.01")), "got %s", out[0])
	})
}

func TestAllocate_Deterministic(t *testing.T) {
	amount := decimal.RequireFromString("9876.543")
	first := Allocate(amount, 4, true)
	for i := 0; i < 100; i++ {
		again := Allocate(amount, 4, true)
		assert.Equal(t, first, again, "identical inputs must produce identical sequences")
	}
}
