package application

import (
	"sort"
	"time"

	"financetracker/internal/budget"
	"financetracker/internal/finance/domain"
)

type CategoryBreakdownItem struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
	Budgeted float64 `json:"budgeted"`
}

type BudgetAnalytics struct {
	Budgeted          float64                 `json:"budgeted"`
	Spent             float64                 `json:"spent"`
	Remaining         float64                 `json:"remaining"`
	CategoryBreakdown []CategoryBreakdownItem `json:"category_breakdown"`
}

type AnalyticsService struct {
	repo      domain.TransactionRepository
	budgetCfg *budget.Config
	now       func() time.Time
}

func NewAnalyticsService(repo domain.TransactionRepository, budgetCfg *budget.Config) *AnalyticsService {
	return &AnalyticsService{
		repo:      repo,
		budgetCfg: budgetCfg,
		now:       time.Now,
	}
}

func (s *AnalyticsService) GetRecentTransactions(userID string, count int) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindRecent(userID, count)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}

// GetCategorySummary sums expense amounts per category over the user's
// whole history. Income is excluded; categories without expenses are not
// reported at all.
func (s *AnalyticsService) GetCategorySummary(userID string) ([]domain.CategoryTotal, error) {
	totals, err := s.repo.SumExpensesByCategory(userID)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		totals = []domain.CategoryTotal{}
	}
	return totals, nil
}

// GetBudgetAnalytics compares the configured budget table against the
// user's expenses in the current calendar month (server UTC time). The
// breakdown covers the union of budgeted and spent categories; remaining
// may go negative on overspend.
func (s *AnalyticsService) GetBudgetAnalytics(userID string) (*BudgetAnalytics, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	categorySpent, err := s.repo.SumExpensesByCategoryInRange(userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	var spent float64
	for _, amount := range categorySpent {
		spent += amount
	}

	categories := make(map[string]struct{}, len(s.budgetCfg.CategoryBudgets)+len(categorySpent))
	for category := range s.budgetCfg.CategoryBudgets {
		categories[category] = struct{}{}
	}
	for category := range categorySpent {
		categories[category] = struct{}{}
	}

	breakdown := make([]CategoryBreakdownItem, 0, len(categories))
	for category := range categories {
		breakdown = append(breakdown, CategoryBreakdownItem{
			Category: category,
			Spent:    categorySpent[category],
			Budgeted: s.budgetCfg.CategoryBudgets[category],
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Category < breakdown[j].Category
	})

	totalBudgeted := s.budgetCfg.TotalBudgeted()
	return &BudgetAnalytics{
		Budgeted:          totalBudgeted,
		Spent:             spent,
		Remaining:         totalBudgeted - spent,
		CategoryBreakdown: breakdown,
	}, nil
}
