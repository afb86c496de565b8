package interfaces

import (
	"financetracker/internal/finance/domain"
	financeErrors "financetracker/internal/finance/errors"
)

// MockTransactionService backs the handler tests with a slice instead of a
// repository. When Err is set every call fails with it.
type MockTransactionService struct {
	Transactions []domain.Transaction
	Err          error

	LastPatch *domain.TransactionPatch
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = "mock-transaction-id"
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionService) ListTransactions(userID string, limit, offset int) ([]domain.Transaction, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	var owned []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	total := len(owned)
	if offset >= len(owned) {
		return []domain.Transaction{}, total, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}

func (m *MockTransactionService) GetTransaction(userID, transactionID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) UpdateTransaction(transaction domain.Transaction) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID && m.Transactions[i].UserID == transaction.UserID {
			m.Transactions[i] = transaction
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) PatchTransaction(userID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastPatch = &patch
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			patch.Apply(&m.Transactions[i])
			updated := m.Transactions[i]
			return &updated, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
