package domain

import (
	"math"
	"time"

	"financetracker/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	maxDescriptionLength = 200
)

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByUser(userID string, limit, offset int) ([]Transaction, error)
	CountByUser(userID string) (int, error)
	FindByID(userID, transactionID string) (*Transaction, error)
	Update(transaction Transaction) error
	UpdateFields(userID, transactionID string, patch TransactionPatch) (*Transaction, error)
	Delete(userID, transactionID string) error
	FindRecent(userID string, count int) ([]Transaction, error)
	SumExpensesByCategory(userID string) ([]CategoryTotal, error)
	SumExpensesByCategoryInRange(userID string, startDate, endDate time.Time) (map[string]float64, error)
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category"`
	Type        string    `json:"type"` // "income" or "expense"
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

// TransactionPatch carries the fields of a partial update. A nil field was
// absent from the payload and must leave the stored value untouched, so a
// zero value stays distinguishable from "not provided".
type TransactionPatch struct {
	Amount      *float64   `json:"amount"`
	Currency    *string    `json:"currency"`
	Category    *string    `json:"category"`
	Type        *string    `json:"type"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

type CategoryTotal struct {
	Category   string  `json:"category"`
	TotalSpent float64 `json:"total_spent"`
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}

func (t *Transaction) Validate() error {
	validationErrors := &errors.ValidationErrors{}
	if !IsValidTransactionType(t.Type) {
		validationErrors.Add(errors.ErrInvalidTransactionType)
	}
	if t.Currency == "" {
		validationErrors.Add(errors.NewFieldValidationError("currency", "must not be empty"))
	}
	if t.Category == "" {
		validationErrors.Add(errors.NewFieldValidationError("category", "must not be empty"))
	}
	if t.Date.IsZero() {
		validationErrors.Add(errors.NewFieldValidationError("date", "must be provided"))
	}
	if len(t.Description) > maxDescriptionLength {
		validationErrors.Add(errors.NewFieldValidationError("description", "must be of length less than 200"))
	}
	if len(validationErrors.Errors) > 0 {
		return validationErrors
	}
	return nil
}

// Validate checks only the fields present in the patch.
func (p *TransactionPatch) Validate() error {
	validationErrors := &errors.ValidationErrors{}
	if p.Type != nil && !IsValidTransactionType(*p.Type) {
		validationErrors.Add(errors.ErrInvalidTransactionType)
	}
	if p.Currency != nil && *p.Currency == "" {
		validationErrors.Add(errors.NewFieldValidationError("currency", "must not be empty"))
	}
	if p.Category != nil && *p.Category == "" {
		validationErrors.Add(errors.NewFieldValidationError("category", "must not be empty"))
	}
	if p.Date != nil && p.Date.IsZero() {
		validationErrors.Add(errors.NewFieldValidationError("date", "must be provided"))
	}
	if p.Description != nil && len(*p.Description) > maxDescriptionLength {
		validationErrors.Add(errors.NewFieldValidationError("description", "must be of length less than 200"))
	}
	if len(validationErrors.Errors) > 0 {
		return validationErrors
	}
	return nil
}

// Apply merges the patch into the transaction, skipping absent fields.
func (p *TransactionPatch) Apply(t *Transaction) {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *TransactionPatch) IsEmpty() bool {
	return p.Amount == nil && p.Currency == nil && p.Category == nil &&
		p.Type == nil && p.Date == nil && p.Description == nil
}
