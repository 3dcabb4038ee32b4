package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartax/internal/domain"
)

func TestLedger_AddCategorizesAndTotals(t *testing.T) {
	led := NewLedger(domain.BusinessRideshare)

	day := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	gas := led.Add(day, "Shell gas station fill-up", decimal.RequireFromString("48.20"))
	oil := led.Add(day, "Jiffy Lube oil change", decimal.RequireFromString("89.99"))
	misc := led.Add(day, "random purchase", decimal.RequireFromString("12.00"))

	assert.NotEmpty(t, gas.ID, "entries get IDs on insert")
	assert.NotEqual(t, gas.ID, oil.ID)
	assert.Equal(t, "Fuel", gas.Category)
	assert.Equal(t, domain.StatusCategorizedByKeyword, gas.Status)
	assert.Equal(t, "Vehicle Maintenance", oil.Category)
	assert.Equal(t, FallbackCategory, misc.Category)
	assert.Equal(t, domain.StatusUncategorized, misc.Status)

	assert.True(t, led.Total().Equal(decimal.RequireFromString("150.19")), "total should be 150.19, got %s", led.Total())
}

func TestLedger_AddEntryRespectsUserCategory(t *testing.T) {
	led := NewLedger(domain.BusinessConsultant)

	entry := led.AddEntry(domain.ExpenseEntry{
		Description: "gas for the grill",
		Amount:      decimal.NewFromInt(30),
		Category:    "Meals & Entertainment",
	})

	assert.Equal(t, "Meals & Entertainment", entry.Category, "user-assigned categories are kept")
	assert.Equal(t, domain.StatusUserAssigned, entry.Status)
	assert.NotEmpty(t, entry.ID)
}

func TestLedger_TotalsByCategory(t *testing.T) {
	led := NewLedger(domain.BusinessEcommerce)
	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	led.Add(day, "USPS shipping labels", decimal.NewFromInt(40))
	led.Add(day, "bubble wrap and boxes for packaging", decimal.NewFromInt(25))
	led.Add(day, "UPS shipping", decimal.NewFromInt(60))

	totals := led.TotalsByCategory()
	require.Len(t, totals, 2)
	assert.Equal(t, "Shipping & Postage", totals[0].Category, "largest category first")
	assert.Equal(t, 2, totals[0].Count)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Packaging", totals[1].Category)
}

func TestLedger_NetBusinessIncome(t *testing.T) {
	led := NewLedger(domain.BusinessRideshare)
	led.Add(time.Now(), "gas", decimal.NewFromInt(500))

	net := led.NetBusinessIncome(decimal.NewFromInt(42_500))
	assert.True(t, net.Equal(decimal.NewFromInt(42_000)), "net should be gross minus expenses, got %s", net)

	// Expenses above gross receipts produce a business loss; the engine
	// accepts negative net business income.
	loss := led.NetBusinessIncome(decimal.NewFromInt(300))
	assert.True(t, loss.Equal(decimal.NewFromInt(-200)))
}
