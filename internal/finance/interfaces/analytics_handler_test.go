package interfaces

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"financetracker/internal/finance/application"
	"financetracker/internal/finance/domain"
)

func TestGetRecentTransactions_DefaultCount(t *testing.T) {
	mockService := &MockAnalyticsService{
		Recent: []domain.Transaction{
			newStoredTransaction("t1", "user-1"),
			newStoredTransaction("t2", "user-1"),
		},
	}
	handler := NewAnalyticsHandler(mockService, respondJSON, respondError)

	req := newAuthenticatedRequest(http.MethodGet, "/api/dashboard/recent", "", "user-1")
	recorder := httptest.NewRecorder()

	handler.GetRecentTransactions(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 5, mockService.LastRecentCount, "count defaults to 5")
	response := decodeResponse(t, recorder)
	data := response["data"].(map[string]interface{})
	assert.Len(t, data["recent"].([]interface{}), 2)
}

func TestGetRecentTransactions_ExplicitCount(t *testing.T) {
	mockService := &MockAnalyticsService{
		Recent: []domain.Transaction{
			newStoredTransaction("t1", "user-1"),
			newStoredTransaction("t2", "user-1"),
		},
	}
	handler := NewAnalyticsHandler(mockService, respondJSON, respondError)

	req := newAuthenticatedRequest(http.MethodGet, "/api/dashboard/recent?count=1", "", "user-1")
	recorder := httptest.NewRecorder()

	handler.GetRecentTransactions(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, mockService.LastRecentCount)
}

func TestGetRecentTransactions_InvalidCount(t *testing.T) {
	handler := NewAnalyticsHandler(&MockAnalyticsService{}, respondJSON, respondError)

	for _, count := range []string{"0", "21", "-3", "many"} {
		req := newAuthenticatedRequest(http.MethodGet, "/api/dashboard/recent?count="+count, "", "user-1")
		recorder := httptest.NewRecorder()

		handler.GetRecentTransactions(recorder, req)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code, "count=%s should be rejected", count)
		response := decodeResponse(t, recorder)
		assert.Equal(t, "Invalid count value", response["message"])
	}
}

func TestGetRecentTransactions_NoUserInContext(t *testing.T) {
	handler := NewAnalyticsHandler(&MockAnalyticsService{}, respondJSON, respondError)

	req := newAuthenticatedRequest(http.MethodGet, "/api/dashboard/recent", "", "")
	recorder := httptest.NewRecorder()

	handler.GetRecentTransactions(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetCategorySummary(t *testing.T) {
	mockService := &MockAnalyticsService{
		Summary: []domain.CategoryTotal{
			{Category: "Food", TotalSpent: 120.50},
			{Category: "Transport", TotalSpent: 30},
		},
	}
	handler := NewAnalyticsHandler(mockService, respondJSON, respondError)

	req := newAuthenticatedRequest(http.MethodGet, "/api/categories/summary", "", "user-1")
	recorder := httptest.NewRecorder()

	handler.GetCategorySummary(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	response := decodeResponse(t, recorder)
	data := response["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	assert.Len(t, categories, 2)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "Food", first["category"])
	assert.Equal(t, 120.5, first["total_spent"])
}

func TestGetBudgetAnalytics(t *testing.T) {
	mockService := &MockAnalyticsService{
		Analytics: &application.BudgetAnalytics{
			Budgeted:  570,
			Spent:     120,
			Remaining: 450,
			CategoryBreakdown: []application.CategoryBreakdownItem{
				{Category: "Food", Spent: 120, Budgeted: 200},
			},
		},
	}
	handler := NewAnalyticsHandler(mockService, respondJSON, respondError)

	req := newAuthenticatedRequest(http.MethodGet, "/api/analytics/budget", "", "user-1")
	recorder := httptest.NewRecorder()

	handler.GetBudgetAnalytics(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	response := decodeResponse(t, recorder)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(570), data["budgeted"])
	assert.Equal(t, float64(120), data["spent"])
	assert.Equal(t, float64(450), data["remaining"])
	breakdown := data["category_breakdown"].([]interface{})
	assert.Len(t, breakdown, 1)
}
