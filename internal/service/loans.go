package service

import (
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/schedule"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/utils"
	"github.com/google/uuid"
)

// LoanParams carries user input for a new loan
type LoanParams struct {
	Name           string  `json:"name"`
	Principal      float64 `json:"principal"`
	Months         int     `json:"months"`
	Rate           float64 `json:"rate"`        // percent per period
	StartMonth     string  `json:"start_month"` // YYYY-MM
	Color          string  `json:"color"`
	RegisterCredit bool    `json:"register_credit"` // mirror the disbursement into the ledger
}

// CreateLoan validates the input, generates the amortization plan and
// persists loan plus plan atomically. When RegisterCredit is set the
// received principal is mirrored into the ledger as income; a failure to
// post is reported through the returned bool but does not undo the loan.
func (s *Service) CreateLoan(p LoanParams) (*models.Loan, bool, error) {
	if p.Name == "" {
		p.Name = "Empréstimo"
	}
	if p.Principal <= 0 {
		return nil, false, fmt.Errorf("%w: principal must be greater than zero", ErrValidation)
	}
	if p.Months < 1 {
		p.Months = 1
	}
	start, err := schedule.ParseMonth(p.StartMonth)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if p.Color == "" {
		p.Color = "#0ea5e9"
	} else if !utils.ValidHexColor(p.Color) {
		return nil, false, fmt.Errorf("%w: color must be a #rrggbb value", ErrValidation)
	}

	loan := &models.Loan{
		ID:         uuid.NewString(),
		Name:       p.Name,
		Color:      p.Color,
		Principal:  p.Principal,
		Months:     p.Months,
		Rate:       p.Rate,
		StartMonth: start.String(),
	}
	_, rows := schedule.Amortize(p.Principal, p.Rate, p.Months, start)
	plan := make([]models.LoanInstallment, 0, len(rows))
	for _, r := range rows {
		plan = append(plan, models.LoanInstallment{
			ID:        uuid.NewString(),
			LoanID:    loan.ID,
			Index:     r.Index,
			Count:     p.Months,
			Month:     r.Month.String(),
			Payment:   r.Payment,
			Interest:  r.Interest,
			Principal: r.Principal,
			Balance:   r.Balance,
			Status:    models.StatusPending,
		})
	}
	if err := s.repo.CreateLoan(loan, plan); err != nil {
		return nil, false, err
	}
	s.log.Infof("Loan created: %s (%.2f over %d months at %.2f%%)",
		loan.Name, loan.Principal, loan.Months, loan.Rate)

	posted := false
	if p.RegisterCredit {
		posted = s.bridge.PostDisbursement(loan)
	}
	return loan, posted, nil
}

// ListLoans returns all loans
func (s *Service) ListLoans() ([]models.Loan, error) {
	return s.repo.ListLoans()
}

// DeleteLoan removes a loan and its whole plan
func (s *Service) DeleteLoan(id string) error {
	if err := s.repo.DeleteLoan(id); err != nil {
		return err
	}
	s.log.Infof("Loan deleted: %s", id)
	return nil
}

// LoanPlan returns the full amortization plan of a loan
func (s *Service) LoanPlan(loanID string) ([]models.LoanInstallment, error) {
	if _, err := s.repo.GetLoan(loanID); err != nil {
		return nil, err
	}
	return s.repo.LoanInstallments(loanID)
}

// LoanInstallmentsForMonth returns the plan rows falling in one period
func (s *Service) LoanInstallmentsForMonth(loanID, month string) ([]models.LoanInstallment, error) {
	m, err := schedule.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.repo.GetLoan(loanID); err != nil {
		return nil, err
	}
	return s.repo.LoanInstallmentsForMonth(loanID, m.String())
}

// ToggleLoanInstallment flips a plan row between pending and paid, with
// the same one-way ledger mirroring as card installments
func (s *Service) ToggleLoanInstallment(id string) (*models.LoanInstallment, bool, error) {
	in, err := s.repo.GetLoanInstallment(id)
	if err != nil {
		return nil, false, err
	}
	next := models.StatusPaid
	if in.Status == models.StatusPaid {
		next = models.StatusPending
	}
	if err := s.repo.SetLoanInstallmentStatus(id, next); err != nil {
		return nil, false, err
	}
	in.Status = next

	posted := false
	if next == models.StatusPaid {
		loan, err := s.repo.GetLoan(in.LoanID)
		if err != nil {
			return in, false, nil
		}
		posted = s.bridge.PostLoanPayment(loan, in)
	}
	return in, posted, nil
}

// LoanSummary recomputes the loan aggregates over its whole plan
func (s *Service) LoanSummary(loanID string) (*schedule.LoanTotals, error) {
	if _, err := s.repo.GetLoan(loanID); err != nil {
		return nil, err
	}
	plan, err := s.repo.LoanInstallments(loanID)
	if err != nil {
		return nil, err
	}
	rows := make([]schedule.LoanRow, 0, len(plan))
	paid := make([]bool, 0, len(plan))
	for _, in := range plan {
		rows = append(rows, schedule.LoanRow{
			Index:     in.Index,
			Month:     schedule.Month(in.Month),
			Payment:   in.Payment,
			Interest:  in.Interest,
			Principal: in.Principal,
			Balance:   in.Balance,
		})
		paid = append(paid, in.Status == models.StatusPaid)
	}
	totals := schedule.ComputeLoanTotals(rows, paid)
	return &totals, nil
}
