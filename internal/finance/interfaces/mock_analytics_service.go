package interfaces

import (
	"financetracker/internal/finance/application"
	"financetracker/internal/finance/domain"
)

// MockAnalyticsService returns canned analytics results for handler tests.
type MockAnalyticsService struct {
	Recent    []domain.Transaction
	Summary   []domain.CategoryTotal
	Analytics *application.BudgetAnalytics
	Err       error

	LastRecentCount int
}

func (m *MockAnalyticsService) GetRecentTransactions(userID string, count int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastRecentCount = count
	if count > len(m.Recent) {
		count = len(m.Recent)
	}
	return m.Recent[:count], nil
}

func (m *MockAnalyticsService) GetCategorySummary(userID string) ([]domain.CategoryTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}

func (m *MockAnalyticsService) GetBudgetAnalytics(userID string) (*application.BudgetAnalytics, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Analytics, nil
}
