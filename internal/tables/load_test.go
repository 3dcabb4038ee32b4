package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartax/internal/domain"
)

const tableYAML = `
year: 2026
statuses:
  single: &flat
    standard_deduction: 15500
    brackets:
      - {rate: 0.10, upper: 12000}
      - {rate: 0.22, upper: 50000}
      - {rate: 0.37, unbounded: true}
    additional_medicare_threshold: 200000
  married_joint: *flat
  married_separate: *flat
  head_of_household: *flat
se:
  net_earnings_factor: 0.9235
  oasdi_rate: 0.124
  medicare_rate: 0.029
  additional_medicare_rate: 0.009
  wage_base: 181200
child_credit:
  per_child: 2000
  per_child_alternate: 2200
  refundable_cap_per_child: 1700
  phase_in_threshold: 2500
  phase_in_rate: 0.15
  per_other_dependent: 500
due_dates:
  - 2026-04-15T00:00:00Z
  - 2026-06-15T00:00:00Z
  - 2026-09-15T00:00:00Z
  - 2027-01-15T00:00:00Z
`

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	table, err := LoadFromFile(writeTableFile(t, tableYAML))
	require.NoError(t, err)

	assert.Equal(t, 2026, table.Year)
	assert.Len(t, table.DueDates, 4)
	st := table.ForStatus(domain.FilingSingle)
	assert.True(t, st.StandardDeduction.Equal(decimal.NewFromInt(15_500)))
	require.Len(t, st.Brackets, 3)
	assert.True(t, st.Brackets[2].Unbounded)
	assert.True(t, table.SE.WageBase.Equal(decimal.NewFromInt(181_200)))
}

func TestLoadFromFile_RejectsInvalidTable(t *testing.T) {
	// Top bracket left bounded.
	bad := `
year: 2026
statuses:
  single: &flat
    standard_deduction: 15500
    brackets:
      - {rate: 0.10, upper: 12000}
      - {rate: 0.22, upper: 50000}
    additional_medicare_threshold: 200000
  married_joint: *flat
  married_separate: *flat
  head_of_household: *flat
se:
  net_earnings_factor: 0.9235
  oasdi_rate: 0.124
  medicare_rate: 0.029
  additional_medicare_rate: 0.009
  wage_base: 181200
due_dates:
  - 2026-04-15T00:00:00Z
`
	_, err := LoadFromFile(writeTableFile(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbounded")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read table file")
}
