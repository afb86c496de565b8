package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"financetracker/internal/auth"
	"financetracker/internal/budget"
	database "financetracker/internal/db"
	"financetracker/internal/finance/application"
	"financetracker/internal/finance/infrastructure"
	"financetracker/internal/finance/interfaces"
	"financetracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	transactionHandler *interfaces.PersonalTransactionHandler
	analyticsHandler   *interfaces.AnalyticsHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	transactionHandler *interfaces.PersonalTransactionHandler,
	analyticsHandler *interfaces.AnalyticsHandler,
) *Server {
	return &Server{
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		transactionHandler: transactionHandler,
		analyticsHandler:   analyticsHandler,
		router:             http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, map[string]interface{}{
		"status": "ready",
		"db":     health,
	})
}

func (s *Server) RegisterRoutes() {
	jwtMiddleware := s.authService.JWTAccessTokenMiddleware()

	mainRouter := http.NewServeMux()

	// Public routes
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	mainRouter.Handle("POST /api/auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	mainRouter.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))

	// Protected routes (using JWT Access Token Middleware)
	mainRouter.Handle("POST /api/auth/logout", jwtMiddleware(http.HandlerFunc(s.authHandler.HandleLogout)))
	mainRouter.Handle("GET /api/profile", jwtMiddleware(http.HandlerFunc(s.authHandler.HandleGetProfile)))

	// TRANSACTIONS API
	mainRouter.Handle("GET /api/transactions", jwtMiddleware(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	mainRouter.Handle("POST /api/transactions", jwtMiddleware(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mainRouter.Handle("GET /api/transactions/{transactionID}", jwtMiddleware(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	mainRouter.Handle("PUT /api/transactions/{transactionID}", jwtMiddleware(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mainRouter.Handle("PATCH /api/transactions/{transactionID}", jwtMiddleware(http.HandlerFunc(s.transactionHandler.PatchTransaction)))
	mainRouter.Handle("DELETE /api/transactions/{transactionID}", jwtMiddleware(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// DASHBOARD AND ANALYTICS API
	mainRouter.Handle("GET /api/dashboard/recent", jwtMiddleware(http.HandlerFunc(s.analyticsHandler.GetRecentTransactions)))
	mainRouter.Handle("GET /api/categories/summary", jwtMiddleware(http.HandlerFunc(s.analyticsHandler.GetCategorySummary)))
	mainRouter.Handle("GET /api/analytics/budget", jwtMiddleware(http.HandlerFunc(s.analyticsHandler.GetBudgetAnalytics)))

	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService, userService)

	transactionRepo := infrastructure.NewPersonalTransactionRepository(dbService.DB)
	transactionService := application.NewPersonalTransactionService(transactionRepo)
	transactionHandler := interfaces.NewPersonalTransactionHandler(transactionService, respondJSON, respondError)

	budgetConfig := budget.Load()
	analyticsService := application.NewAnalyticsService(transactionRepo, budgetConfig)
	analyticsHandler := interfaces.NewAnalyticsHandler(analyticsService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, transactionHandler, analyticsHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
