package repository

import (
	"database/sql"
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
)

// CreateLoan persists a loan together with its full amortization plan in a
// single transaction.
func (r *Repository) CreateLoan(loan *models.Loan, plan []models.LoanInstallment) error {
	return r.inTx(func(tx *sql.Tx) error {
		query := `
			INSERT INTO gf.loans (id, name, color, principal, months, rate, start_month, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
			RETURNING created_at`
		err := tx.QueryRow(query, loan.ID, loan.Name, loan.Color, loan.Principal,
			loan.Months, loan.Rate, loan.StartMonth).Scan(&loan.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create loan: %w", err)
		}
		for i := range plan {
			in := &plan[i]
			_, err := tx.Exec(`
				INSERT INTO gf.loan_installments (id, loan_id, idx, count, month, payment, interest, principal, balance, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				in.ID, in.LoanID, in.Index, in.Count, in.Month,
				in.Payment, in.Interest, in.Principal, in.Balance, in.Status)
			if err != nil {
				return fmt.Errorf("failed to create loan installment %d: %w", in.Index, err)
			}
		}
		return nil
	})
}

// GetLoan retrieves a loan by id
func (r *Repository) GetLoan(id string) (*models.Loan, error) {
	loan := &models.Loan{}
	query := `
		SELECT id, name, color, principal, months, rate, start_month, created_at
		FROM gf.loans
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&loan.ID, &loan.Name, &loan.Color,
		&loan.Principal, &loan.Months, &loan.Rate, &loan.StartMonth, &loan.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}
	return loan, nil
}

// ListLoans retrieves all loans ordered by creation time
func (r *Repository) ListLoans() ([]models.Loan, error) {
	query := `
		SELECT id, name, color, principal, months, rate, start_month, created_at
		FROM gf.loans
		ORDER BY created_at`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		var l models.Loan
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.Principal, &l.Months,
			&l.Rate, &l.StartMonth, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// DeleteLoan deletes a loan; its plan rows go with it via cascade
func (r *Repository) DeleteLoan(id string) error {
	res, err := r.db.Exec(`DELETE FROM gf.loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const loanInstallmentCols = `id, loan_id, idx, count, month, payment, interest, principal, balance, status`

func scanLoanInstallments(rows *sql.Rows) ([]models.LoanInstallment, error) {
	var out []models.LoanInstallment
	for rows.Next() {
		var in models.LoanInstallment
		if err := rows.Scan(&in.ID, &in.LoanID, &in.Index, &in.Count, &in.Month,
			&in.Payment, &in.Interest, &in.Principal, &in.Balance, &in.Status); err != nil {
			return nil, fmt.Errorf("failed to scan loan installment: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// LoanInstallments retrieves a loan's full plan ordered by period index
func (r *Repository) LoanInstallments(loanID string) ([]models.LoanInstallment, error) {
	query := `
		SELECT ` + loanInstallmentCols + `
		FROM gf.loan_installments
		WHERE loan_id = $1
		ORDER BY idx`
	rows, err := r.db.Query(query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan installments: %w", err)
	}
	defer rows.Close()
	return scanLoanInstallments(rows)
}

// LoanInstallmentsForMonth retrieves the plan rows targeting one period
func (r *Repository) LoanInstallmentsForMonth(loanID, month string) ([]models.LoanInstallment, error) {
	query := `
		SELECT ` + loanInstallmentCols + `
		FROM gf.loan_installments
		WHERE loan_id = $1 AND month = $2
		ORDER BY idx`
	rows, err := r.db.Query(query, loanID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan installments for month: %w", err)
	}
	defer rows.Close()
	return scanLoanInstallments(rows)
}

// GetLoanInstallment retrieves a single plan row by id
func (r *Repository) GetLoanInstallment(id string) (*models.LoanInstallment, error) {
	in := &models.LoanInstallment{}
	query := `
		SELECT ` + loanInstallmentCols + `
		FROM gf.loan_installments
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&in.ID, &in.LoanID, &in.Index, &in.Count,
		&in.Month, &in.Payment, &in.Interest, &in.Principal, &in.Balance, &in.Status)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find loan installment: %w", err)
	}
	return in, nil
}

// SetLoanInstallmentStatus updates a plan row's payment status
func (r *Repository) SetLoanInstallmentStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE gf.loan_installments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update loan installment status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
