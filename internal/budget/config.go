// Package budget holds the process-wide budget table used by the analytics
// endpoints. The table is shared by every user; making it per-user needs a
// budgets store and write endpoints that this service does not expose yet.
package budget

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const defaultTotalBudget = 500

// defaultCategoryBudgets mirrors the built-in budget table the service
// ships with when no CATEGORY_BUDGETS override is configured.
var defaultCategoryBudgets = map[string]float64{
	"Food":          200,
	"Transport":     100,
	"Entertainment": 120,
	"Utilities":     150,
	"Misc":          50,
}

type Config struct {
	CategoryBudgets    map[string]float64
	DefaultTotalBudget float64
}

// Load builds the budget table from the environment:
// CATEGORY_BUDGETS as "Name:amount,Name:amount" pairs and
// DEFAULT_TOTAL_BUDGET as the fallback total when no category is budgeted.
// Malformed pairs are logged and skipped.
func Load() *Config {
	cfg := &Config{
		CategoryBudgets:    defaultCategoryBudgets,
		DefaultTotalBudget: defaultTotalBudget,
	}

	if raw := os.Getenv("CATEGORY_BUDGETS"); raw != "" {
		cfg.CategoryBudgets = parseCategoryBudgets(raw)
	}
	if raw := os.Getenv("DEFAULT_TOTAL_BUDGET"); raw != "" {
		total, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("Invalid DEFAULT_TOTAL_BUDGET %q, keeping %v", raw, defaultTotalBudget)
		} else {
			cfg.DefaultTotalBudget = total
		}
	}
	return cfg
}

func parseCategoryBudgets(raw string) map[string]float64 {
	budgets := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, ":")
		if !found {
			log.Printf("Invalid CATEGORY_BUDGETS entry %q, skipping", pair)
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			log.Printf("Invalid CATEGORY_BUDGETS amount in %q, skipping", pair)
			continue
		}
		budgets[strings.TrimSpace(name)] = amount
	}
	return budgets
}

// TotalBudgeted is the sum of all category budgets, or the default total
// when no category budgets are configured at all.
func (c *Config) TotalBudgeted() float64 {
	if len(c.CategoryBudgets) == 0 {
		return c.DefaultTotalBudget
	}
	var total float64
	for _, amount := range c.CategoryBudgets {
		total += amount
	}
	return total
}
