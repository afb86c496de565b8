package infrastructure

import (
	"sort"
	"time"

	"financetracker/internal/finance/domain"
	financeErrors "financetracker/internal/finance/errors"
)

// MockTransactionRepository is an in-memory TransactionRepository used by
// the application-layer tests. When Err is set every method fails with it.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Err          error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) sortedByUser(userID string) []domain.Transaction {
	var owned []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		if owned[i].Date.Equal(owned[j].Date) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].Date.After(owned[j].Date)
	})
	return owned
}

func (m *MockTransactionRepository) FindByUser(userID string, limit, offset int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	owned := m.sortedByUser(userID)
	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (m *MockTransactionRepository) CountByUser(userID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MockTransactionRepository) indexOf(userID, transactionID string) int {
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			return i
		}
	}
	return -1
}

func (m *MockTransactionRepository) FindByID(userID, transactionID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	i := m.indexOf(userID, transactionID)
	if i < 0 {
		return nil, financeErrors.ErrTransactionNotFound
	}
	found := m.Transactions[i]
	return &found, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	i := m.indexOf(transaction.UserID, transaction.ID)
	if i < 0 {
		return financeErrors.ErrTransactionNotFound
	}
	m.Transactions[i] = transaction
	return nil
}

func (m *MockTransactionRepository) UpdateFields(userID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	i := m.indexOf(userID, transactionID)
	if i < 0 {
		return nil, financeErrors.ErrTransactionNotFound
	}
	patch.Apply(&m.Transactions[i])
	m.Transactions[i].RoundToTwoDecimalPlaces()
	updated := m.Transactions[i]
	return &updated, nil
}

func (m *MockTransactionRepository) Delete(userID, transactionID string) error {
	if m.Err != nil {
		return m.Err
	}
	i := m.indexOf(userID, transactionID)
	if i < 0 {
		return financeErrors.ErrTransactionNotFound
	}
	m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
	return nil
}

func (m *MockTransactionRepository) FindRecent(userID string, count int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	owned := m.sortedByUser(userID)
	if count > len(owned) {
		count = len(owned)
	}
	return owned[:count], nil
}

func (m *MockTransactionRepository) SumExpensesByCategory(userID string) ([]domain.CategoryTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	sums := make(map[string]float64)
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Type == domain.TypeExpense {
			sums[transaction.Category] += transaction.Amount
		}
	}
	var totals []domain.CategoryTotal
	for category, amount := range sums {
		totals = append(totals, domain.CategoryTotal{Category: category, TotalSpent: amount})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals, nil
}

func (m *MockTransactionRepository) SumExpensesByCategoryInRange(userID string, startDate, endDate time.Time) (map[string]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	sums := make(map[string]float64)
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID || transaction.Type != domain.TypeExpense {
			continue
		}
		if transaction.Date.Before(startDate) || !transaction.Date.Before(endDate) {
			continue
		}
		sums[transaction.Category] += transaction.Amount
	}
	return sums, nil
}
