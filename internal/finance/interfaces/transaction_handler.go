package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"financetracker/internal/finance/domain"
	financeErrors "financetracker/internal/finance/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	ListTransactions(userID string, limit, offset int) ([]domain.Transaction, int, error)
	GetTransaction(userID, transactionID string) (*domain.Transaction, error)
	UpdateTransaction(transaction domain.Transaction) (*domain.Transaction, error)
	PatchTransaction(userID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

type PersonalTransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewPersonalTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *PersonalTransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil {
		log.Fatal("RespondJSON function must not be nil")
		return nil
	}
	if respondError == nil {
		log.Fatal("RespondError function must not be nil")
		return nil
	}
	return &PersonalTransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// transactionRequest uses pointer fields so a missing required field is
// reported by name instead of silently becoming a zero value.
type transactionRequest struct {
	Amount      *float64   `json:"amount"`
	Currency    *string    `json:"currency"`
	Category    *string    `json:"category"`
	Type        *string    `json:"type"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

func (req *transactionRequest) toTransaction(userID, transactionID string) (*domain.Transaction, error) {
	validationErrors := &financeErrors.ValidationErrors{}
	if req.Amount == nil {
		validationErrors.Add(financeErrors.NewFieldValidationError("amount", "is required"))
	}
	if req.Currency == nil {
		validationErrors.Add(financeErrors.NewFieldValidationError("currency", "is required"))
	}
	if req.Category == nil {
		validationErrors.Add(financeErrors.NewFieldValidationError("category", "is required"))
	}
	if req.Type == nil {
		validationErrors.Add(financeErrors.NewFieldValidationError("type", "is required"))
	}
	if req.Date == nil {
		validationErrors.Add(financeErrors.NewFieldValidationError("date", "is required"))
	}
	if len(validationErrors.Errors) > 0 {
		return nil, validationErrors
	}

	transaction := &domain.Transaction{
		ID:       transactionID,
		UserID:   userID,
		Amount:   *req.Amount,
		Currency: *req.Currency,
		Category: *req.Category,
		Type:     *req.Type,
		Date:     *req.Date,
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	return transaction, nil
}

func (h *PersonalTransactionHandler) respondValidationError(w http.ResponseWriter, err error) {
	var validationErrors *financeErrors.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.respondError(w, http.StatusUnprocessableEntity, "Validation errors occurred", validationErrors.Messages())
		return
	}
	h.respondError(w, http.StatusUnprocessableEntity, err.Error())
}

func (h *PersonalTransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	transaction, err := req.toTransaction(userID, "")
	if err != nil {
		h.respondValidationError(w, err)
		return
	}

	if err := h.service.CreateTransaction(transaction); err != nil {
		if financeErrors.IsValidationErrors(err) || financeErrors.IsValidationError(err) {
			h.respondValidationError(w, err)
			return
		}
		log.Println("Error during transaction creation:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *PersonalTransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := defaultPageSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxPageSize {
			h.respondError(w, http.StatusUnprocessableEntity, "Invalid limit value")
			return
		}
		limit = parsed
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			h.respondError(w, http.StatusUnprocessableEntity, "Invalid offset value")
			return
		}
		offset = parsed
	}

	transactions, total, err := h.service.ListTransactions(userID, limit, offset)
	if err != nil {
		log.Println("Error during transaction listing:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data": map[string]interface{}{
			"transactions": transactions,
			"total":        total,
		},
	})
}

func (h *PersonalTransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transaction, err := h.service.GetTransaction(userID, r.PathValue("transactionID"))
	if err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    transaction,
	})
}

func (h *PersonalTransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	transaction, err := req.toTransaction(userID, r.PathValue("transactionID"))
	if err != nil {
		h.respondValidationError(w, err)
		return
	}

	updated, err := h.service.UpdateTransaction(*transaction)
	if err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		if financeErrors.IsValidationErrors(err) || financeErrors.IsValidationError(err) {
			h.respondValidationError(w, err)
			return
		}
		log.Println("Error during transaction update:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    updated,
	})
}

func (h *PersonalTransactionHandler) PatchTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var patch domain.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	updated, err := h.service.PatchTransaction(userID, r.PathValue("transactionID"), patch)
	if err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		if financeErrors.IsValidationErrors(err) || financeErrors.IsValidationError(err) {
			h.respondValidationError(w, err)
			return
		}
		log.Println("Error during transaction patch:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    updated,
	})
}

func (h *PersonalTransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteTransaction(userID, r.PathValue("transactionID")); err != nil {
		if errors.Is(err, financeErrors.ErrTransactionNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Println("Error during transaction deletion:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
