package service

import (
	"fmt"
	"time"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/repository"
	"github.com/google/uuid"
)

// TransactionParams carries user input for a manual ledger entry
type TransactionParams struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// AddTransaction validates and appends a manual ledger entry
func (s *Service) AddTransaction(p TransactionParams) (*models.Transaction, error) {
	if p.Description == "" || p.Category == "" {
		return nil, fmt.Errorf("%w: description and category are required", ErrValidation)
	}
	if p.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if p.Type != models.TypeIncome && p.Type != models.TypeExpense {
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrValidation, models.TypeIncome, models.TypeExpense)
	}
	if p.Status == "" {
		p.Status = models.StatusPaid
	}
	if p.Status != models.StatusPaid && p.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrValidation, models.StatusPaid, models.StatusPending)
	}
	if _, err := time.Parse("2006-01-02", p.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	t := &models.Transaction{
		ID:          uuid.NewString(),
		Date:        p.Date,
		Description: p.Description,
		Category:    p.Category,
		Type:        p.Type,
		Amount:      p.Amount,
		Status:      p.Status,
	}
	if err := s.repo.AppendTransaction(t); err != nil {
		return nil, err
	}
	s.log.Infof("Transaction added: %s %s %.2f", t.Type, t.Description, t.Amount)
	return t, nil
}

// ListTransactions returns ledger entries matching the filter
func (s *Service) ListTransactions(f repository.TransactionFilter) ([]models.Transaction, error) {
	return s.repo.ListTransactions(f)
}

// DeleteTransaction removes a ledger entry
func (s *Service) DeleteTransaction(id string) error {
	return s.repo.DeleteTransaction(id)
}
