package interfaces

import (
	"log"
	"net/http"
	"strconv"

	"financetracker/internal/finance/application"
	"financetracker/internal/finance/domain"
)

const (
	defaultRecentCount = 5
	maxRecentCount     = 20
)

type AnalyticsServiceInterface interface {
	GetRecentTransactions(userID string, count int) ([]domain.Transaction, error)
	GetCategorySummary(userID string) ([]domain.CategoryTotal, error)
	GetBudgetAnalytics(userID string) (*application.BudgetAnalytics, error)
}

type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewAnalyticsHandler(
	service AnalyticsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *AnalyticsHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &AnalyticsHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AnalyticsHandler) GetRecentTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	count := defaultRecentCount
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed < 1 || parsed > maxRecentCount {
			h.respondError(w, http.StatusUnprocessableEntity, "Invalid count value")
			return
		}
		count = parsed
	}

	recent, err := h.service.GetRecentTransactions(userID, count)
	if err != nil {
		log.Println("Error during recent transactions retrieval:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve recent transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Recent transactions retrieved successfully.",
		"data": map[string]interface{}{
			"recent": recent,
		},
	})
}

func (h *AnalyticsHandler) GetCategorySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetCategorySummary(userID)
	if err != nil {
		log.Println("Error during category summary retrieval:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category summary retrieved successfully.",
		"data": map[string]interface{}{
			"categories": categories,
		},
	})
}

func (h *AnalyticsHandler) GetBudgetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	analytics, err := h.service.GetBudgetAnalytics(userID)
	if err != nil {
		log.Println("Error during budget analytics retrieval:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve budget analytics")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget analytics retrieved successfully.",
		"data":    analytics,
	})
}
