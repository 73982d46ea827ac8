package service

import (
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/schedule"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/utils/email"
)

// DueInstallments collects every installment still pending in the given
// month across all cards and loans, for the reminder digest.
func (s *Service) DueInstallments(month string) ([]email.DueItem, error) {
	m, err := schedule.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var items []email.DueItem
	cards, err := s.repo.ListCards()
	if err != nil {
		return nil, err
	}
	for _, card := range cards {
		installments, err := s.repo.CardInstallmentsForMonth(card.ID, m.String())
		if err != nil {
			return nil, err
		}
		for _, in := range installments {
			if in.Status == models.StatusPaid {
				continue
			}
			items = append(items, email.DueItem{
				Source:      card.Name,
				Description: fmt.Sprintf("%s (%d/%d)", in.Description, in.Index, in.Count),
				Amount:      in.Amount,
			})
		}
	}

	loans, err := s.repo.ListLoans()
	if err != nil {
		return nil, err
	}
	for _, loan := range loans {
		installments, err := s.repo.LoanInstallmentsForMonth(loan.ID, m.String())
		if err != nil {
			return nil, err
		}
		for _, in := range installments {
			if in.Status == models.StatusPaid {
				continue
			}
			items = append(items, email.DueItem{
				Source:      loan.Name,
				Description: fmt.Sprintf("Parcela %d/%d", in.Index, in.Count),
				Amount:      in.Payment,
			})
		}
	}
	return items, nil
}
