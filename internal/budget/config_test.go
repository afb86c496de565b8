package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATEGORY_BUDGETS", "")
	t.Setenv("DEFAULT_TOTAL_BUDGET", "")

	cfg := Load()

	assert.Equal(t, 200.0, cfg.CategoryBudgets["Food"])
	assert.Equal(t, 100.0, cfg.CategoryBudgets["Transport"])
	assert.Len(t, cfg.CategoryBudgets, 5)
	assert.Equal(t, 500.0, cfg.DefaultTotalBudget)
	assert.Equal(t, 620.0, cfg.TotalBudgeted(), "built-in table sums to 620")
}

func TestLoad_Override(t *testing.T) {
	t.Setenv("CATEGORY_BUDGETS", "Rent: 900, Food:250")
	t.Setenv("DEFAULT_TOTAL_BUDGET", "1500")

	cfg := Load()

	assert.Equal(t, map[string]float64{"Rent": 900, "Food": 250}, cfg.CategoryBudgets)
	assert.Equal(t, 1500.0, cfg.DefaultTotalBudget)
	assert.Equal(t, 1150.0, cfg.TotalBudgeted())
}

func TestLoad_MalformedEntriesSkipped(t *testing.T) {
	t.Setenv("CATEGORY_BUDGETS", "Food:250,broken,Transport:abc,,Rent:900")
	t.Setenv("DEFAULT_TOTAL_BUDGET", "")

	cfg := Load()

	assert.Equal(t, map[string]float64{"Food": 250, "Rent": 900}, cfg.CategoryBudgets)
}

func TestLoad_InvalidDefaultTotalKeepsBuiltIn(t *testing.T) {
	t.Setenv("CATEGORY_BUDGETS", "")
	t.Setenv("DEFAULT_TOTAL_BUDGET", "plenty")

	cfg := Load()

	assert.Equal(t, 500.0, cfg.DefaultTotalBudget)
}

func TestTotalBudgeted_EmptyTableFallsBack(t *testing.T) {
	cfg := &Config{CategoryBudgets: map[string]float64{}, DefaultTotalBudget: 750}

	assert.Equal(t, 750.0, cfg.TotalBudgeted())
}
