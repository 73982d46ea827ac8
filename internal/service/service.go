package service

import (
	"context"
	"errors"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/config"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/ledger"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/repository"
	"github.com/sirupsen/logrus"
)

// ErrValidation marks rejected user input. Handlers map it to 400.
var ErrValidation = errors.New("invalid input")

// ErrNotFound mirrors the repository's referential error for callers that
// only import the service package.
var ErrNotFound = repository.ErrNotFound

// Repository is the store-of-record the service operates on. The concrete
// Postgres implementation lives in internal/repository; tests substitute
// an in-memory one.
type Repository interface {
	CreateCard(card *models.Card) error
	GetCard(id string) (*models.Card, error)
	ListCards() ([]models.Card, error)
	UpdateCard(card *models.Card) error
	DeleteCard(id string) error

	CreateCharge(charge *models.Charge, installments []models.CardInstallment) error
	ListCharges(cardID string) ([]models.Charge, error)
	DeleteCharge(id string) error

	CardInstallments(cardID string) ([]models.CardInstallment, error)
	CardInstallmentsForMonth(cardID, month string) ([]models.CardInstallment, error)
	GetCardInstallment(id string) (*models.CardInstallment, error)
	SetCardInstallmentStatus(id, status string) error

	CreateLoan(loan *models.Loan, plan []models.LoanInstallment) error
	GetLoan(id string) (*models.Loan, error)
	ListLoans() ([]models.Loan, error)
	DeleteLoan(id string) error

	LoanInstallments(loanID string) ([]models.LoanInstallment, error)
	LoanInstallmentsForMonth(loanID, month string) ([]models.LoanInstallment, error)
	GetLoanInstallment(id string) (*models.LoanInstallment, error)
	SetLoanInstallmentStatus(id, status string) error

	AppendTransaction(t *models.Transaction) error
	ListTransactions(f repository.TransactionFilter) ([]models.Transaction, error)
	DeleteTransaction(id string) error

	CreateHolding(h *models.Holding) error
	ListHoldings() ([]models.Holding, error)
	GetHolding(id string) (*models.Holding, error)
	UpdateHolding(h *models.Holding) error
	DeleteHolding(id string) error
}

// PriceSource resolves one asset symbol to a live unit price
type PriceSource interface {
	Quote(ctx context.Context, symbol, assetType, currency string) (models.Quote, error)
}

// Service handles business logic
type Service struct {
	repo   Repository
	prices PriceSource
	bridge *ledger.Bridge
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo Repository, prices PriceSource, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		prices: prices,
		bridge: ledger.NewBridge(repo, log),
		log:    log,
		config: cfg,
	}
}
