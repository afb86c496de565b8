package application

import (
	"github.com/google/uuid"

	"financetracker/internal/finance/domain"
)

type PersonalTransactionService struct {
	repo domain.TransactionRepository
}

func NewPersonalTransactionService(repo domain.TransactionRepository) *PersonalTransactionService {
	return &PersonalTransactionService{repo: repo}
}

// CreateTransaction persists a new transaction for the given owner. The id
// is always generated here; anything the client supplied is discarded.
func (s *PersonalTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.repo.Save(*transaction)
}

func (s *PersonalTransactionService) ListTransactions(userID string, limit, offset int) ([]domain.Transaction, int, error) {
	transactions, err := s.repo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, total, nil
}

func (s *PersonalTransactionService) GetTransaction(userID, transactionID string) (*domain.Transaction, error) {
	return s.repo.FindByID(userID, transactionID)
}

// UpdateTransaction replaces every field of an owned transaction.
func (s *PersonalTransactionService) UpdateTransaction(transaction domain.Transaction) (*domain.Transaction, error) {
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// PatchTransaction updates only the fields present in the patch.
func (s *PersonalTransactionService) PatchTransaction(userID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateFields(userID, transactionID, patch)
}

func (s *PersonalTransactionService) DeleteTransaction(userID, transactionID string) error {
	return s.repo.Delete(userID, transactionID)
}
