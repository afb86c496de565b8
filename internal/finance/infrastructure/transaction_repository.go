package infrastructure

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"financetracker/internal/finance/domain"
	financeErrors "financetracker/internal/finance/errors"
)

type PersonalTransactionRepository struct {
	db *sql.DB
}

func NewPersonalTransactionRepository(db *sql.DB) *PersonalTransactionRepository {
	return &PersonalTransactionRepository{db: db}
}

const transactionColumns = `id, user_id, amount, currency, category, type, date, description`

func (r *PersonalTransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, user_id, amount, currency, category, type, date, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`,
		transaction.ID, transaction.UserID, transaction.Amount, transaction.Currency,
		transaction.Category, transaction.Type, transaction.Date, transaction.Description,
	)
	return err
}

// FindByUser returns the user's transactions newest first. The secondary id
// ordering keeps equal dates stable across calls.
func (r *PersonalTransactionRepository) FindByUser(userID string, limit, offset int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT `+transactionColumns+` FROM transactions
        WHERE user_id = $1 ORDER BY date DESC, id LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *PersonalTransactionRepository) CountByUser(userID string) (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&total)
	return total, err
}

// FindByID is scoped to the owner: a transaction that exists but belongs to
// another user is reported exactly like a missing one.
func (r *PersonalTransactionRepository) FindByID(userID, transactionID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	).Scan(
		&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Currency,
		&transaction.Category, &transaction.Type, &transaction.Date, &transaction.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *PersonalTransactionRepository) Update(transaction domain.Transaction) error {
	result, err := r.db.Exec(
		`UPDATE transactions
        SET amount = $1, currency = $2, category = $3, type = $4, date = $5, description = $6, updated_at = NOW()
        WHERE id = $7 AND user_id = $8`,
		transaction.Amount, transaction.Currency, transaction.Category, transaction.Type,
		transaction.Date, transaction.Description, transaction.ID, transaction.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

// UpdateFields applies a partial update inside a database transaction: the
// row is locked, merged with the patch and written back as one unit.
func (r *PersonalTransactionRepository) UpdateFields(userID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}

	var transaction domain.Transaction
	err = tx.QueryRow(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		transactionID, userID,
	).Scan(
		&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Currency,
		&transaction.Category, &transaction.Type, &transaction.Date, &transaction.Description,
	)
	if err != nil {
		safeRollback(tx)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}

	patch.Apply(&transaction)
	transaction.RoundToTwoDecimalPlaces()

	_, err = tx.Exec(
		`UPDATE transactions
        SET amount = $1, currency = $2, category = $3, type = $4, date = $5, description = $6, updated_at = NOW()
        WHERE id = $7 AND user_id = $8`,
		transaction.Amount, transaction.Currency, transaction.Category, transaction.Type,
		transaction.Date, transaction.Description, transaction.ID, transaction.UserID,
	)
	if err != nil {
		safeRollback(tx)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *PersonalTransactionRepository) Delete(userID, transactionID string) error {
	result, err := r.db.Exec(
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *PersonalTransactionRepository) FindRecent(userID string, count int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT `+transactionColumns+` FROM transactions
        WHERE user_id = $1 ORDER BY date DESC, id LIMIT $2`,
		userID, count,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *PersonalTransactionRepository) SumExpensesByCategory(userID string) ([]domain.CategoryTotal, error) {
	rows, err := r.db.Query(
		`SELECT category, SUM(amount) FROM transactions
        WHERE user_id = $1 AND type = 'expense'
        GROUP BY category ORDER BY category`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var total domain.CategoryTotal
		if err := rows.Scan(&total.Category, &total.TotalSpent); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *PersonalTransactionRepository) SumExpensesByCategoryInRange(userID string, startDate, endDate time.Time) (map[string]float64, error) {
	rows, err := r.db.Query(
		`SELECT category, SUM(amount) FROM transactions
        WHERE user_id = $1 AND type = 'expense' AND date >= $2 AND date < $3
        GROUP BY category`,
		userID, startDate, endDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spent := make(map[string]float64)
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, err
		}
		spent[category] = amount
	}
	return spent, rows.Err()
}

func scanTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(
			&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Currency,
			&transaction.Category, &transaction.Type, &transaction.Date, &transaction.Description,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
