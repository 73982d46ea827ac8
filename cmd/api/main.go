package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/config"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/handler"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/integrations/ecb"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/integrations/quotes"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/middleware"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/repository"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/schedule"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/service"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	fxClient := ecb.NewClient(cfg, logger)
	quotesClient := quotes.NewClient(cfg, fxClient, logger)
	svc := service.NewService(repo, quotesClient, logger, cfg)
	h := handler.NewHandler(svc, quotesClient, fxClient, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/api/quotes", h.Quotes).Methods("GET")
	r.HandleFunc("/api/history", h.History).Methods("GET")
	r.HandleFunc("/api/fx", h.FXRate).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))

	authRouter.HandleFunc("/cards", h.CreateCard).Methods("POST")
	authRouter.HandleFunc("/cards", h.ListCards).Methods("GET")
	authRouter.HandleFunc("/cards/{id}", h.UpdateCard).Methods("PUT")
	authRouter.HandleFunc("/cards/{id}", h.DeleteCard).Methods("DELETE")
	authRouter.HandleFunc("/cards/{id}/charges", h.AddCharge).Methods("POST")
	authRouter.HandleFunc("/cards/{id}/charges", h.ListCharges).Methods("GET")
	authRouter.HandleFunc("/cards/{id}/invoice", h.CardInvoice).Methods("GET")
	authRouter.HandleFunc("/cards/{id}/invoice/pay", h.PayInvoice).Methods("POST")
	authRouter.HandleFunc("/cards/{id}/invoice/export", h.ExportInvoice).Methods("GET")
	authRouter.HandleFunc("/cards/{id}/summary", h.CardSummary).Methods("GET")
	authRouter.HandleFunc("/charges/{id}", h.DeleteCharge).Methods("DELETE")
	authRouter.HandleFunc("/card-installments/{id}/toggle", h.ToggleCardInstallment).Methods("POST")

	authRouter.HandleFunc("/loans", h.CreateLoan).Methods("POST")
	authRouter.HandleFunc("/loans", h.ListLoans).Methods("GET")
	authRouter.HandleFunc("/loans/{id}", h.DeleteLoan).Methods("DELETE")
	authRouter.HandleFunc("/loans/{id}/plan", h.LoanPlan).Methods("GET")
	authRouter.HandleFunc("/loans/{id}/plan/export", h.ExportLoanPlan).Methods("GET")
	authRouter.HandleFunc("/loans/{id}/installments", h.LoanInstallmentsForMonth).Methods("GET")
	authRouter.HandleFunc("/loans/{id}/summary", h.LoanSummary).Methods("GET")
	authRouter.HandleFunc("/loan-installments/{id}/toggle", h.ToggleLoanInstallment).Methods("POST")

	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	authRouter.HandleFunc("/transactions", h.AddTransaction).Methods("POST")
	authRouter.HandleFunc("/transactions/{id}", h.DeleteTransaction).Methods("DELETE")

	authRouter.HandleFunc("/holdings", h.AddHolding).Methods("POST")
	authRouter.HandleFunc("/holdings", h.ListHoldings).Methods("GET")
	authRouter.HandleFunc("/holdings/{id}", h.UpdateHolding).Methods("PUT")
	authRouter.HandleFunc("/holdings/{id}", h.DeleteHolding).Methods("DELETE")
	authRouter.HandleFunc("/portfolio", h.Portfolio).Methods("GET")

	// Reminder job: mails the pending installments of the current month
	if cfg.SMTPHost != "" && cfg.ReminderEmail != "" {
		sender := email.NewSender(cfg, logger)
		c := cron.New()
		_, err := c.AddFunc(cfg.ReminderCron, func() {
			month := schedule.CurrentMonth().String()
			items, err := svc.DueInstallments(month)
			if err != nil {
				logger.Errorf("Failed to collect due installments: %v", err)
				return
			}
			if err := sender.SendDueReminder(cfg.ReminderEmail, month, items); err != nil {
				logger.Errorf("Failed to send reminder: %v", err)
			}
		})
		if err != nil {
			logger.Fatalf("Invalid reminder schedule %q: %v", cfg.ReminderCron, err)
		}
		c.Start()
		defer c.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
