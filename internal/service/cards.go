package service

import (
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/schedule"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/utils"
	"github.com/google/uuid"
)

// CardParams carries user input for creating or updating a card
type CardParams struct {
	Name     string  `json:"name"`
	Limit    float64 `json:"limit"`
	Color    string  `json:"color"`
	CloseDay int     `json:"close_day"`
	DueDay   int     `json:"due_day"`
}

// ChargeParams carries user input for a new card purchase
type ChargeParams struct {
	Date         string  `json:"date"` // purchase date, YYYY-MM-DD
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Installments int     `json:"installments"`
	FirstMonth   string  `json:"first_month"` // first invoice month; defaults to the purchase month
}

func (p *CardParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: card name is required", ErrValidation)
	}
	if p.Limit <= 0 {
		return fmt.Errorf("%w: credit limit must be greater than zero", ErrValidation)
	}
	if p.CloseDay == 0 {
		p.CloseDay = 1
	}
	if p.DueDay == 0 {
		p.DueDay = 5
	}
	if !utils.ValidDayOfMonth(p.CloseDay) || !utils.ValidDayOfMonth(p.DueDay) {
		return fmt.Errorf("%w: closing and due days must be between 1 and 31", ErrValidation)
	}
	if p.Color == "" {
		p.Color = "#2563eb"
	} else if !utils.ValidHexColor(p.Color) {
		return fmt.Errorf("%w: color must be a #rrggbb value", ErrValidation)
	}
	return nil
}

// CreateCard validates the input and creates a new card
func (s *Service) CreateCard(p CardParams) (*models.Card, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	card := &models.Card{
		ID:       uuid.NewString(),
		Name:     p.Name,
		Limit:    p.Limit,
		Color:    p.Color,
		CloseDay: p.CloseDay,
		DueDay:   p.DueDay,
	}
	if err := s.repo.CreateCard(card); err != nil {
		return nil, err
	}
	s.log.Infof("Card created: %s (limit %.2f)", card.Name, card.Limit)
	return card, nil
}

// ListCards returns all cards
func (s *Service) ListCards() ([]models.Card, error) {
	return s.repo.ListCards()
}

// GetCard returns one card
func (s *Service) GetCard(id string) (*models.Card, error) {
	return s.repo.GetCard(id)
}

// UpdateCard replaces a card's settings
func (s *Service) UpdateCard(id string, p CardParams) (*models.Card, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	card, err := s.repo.GetCard(id)
	if err != nil {
		return nil, err
	}
	card.Name = p.Name
	card.Limit = p.Limit
	card.Color = p.Color
	card.CloseDay = p.CloseDay
	card.DueDay = p.DueDay
	if err := s.repo.UpdateCard(card); err != nil {
		return nil, err
	}
	s.log.Infof("Card updated: %s", card.Name)
	return card, nil
}

// DeleteCard removes a card and every charge and installment under it
func (s *Service) DeleteCard(id string) error {
	if err := s.repo.DeleteCard(id); err != nil {
		return err
	}
	s.log.Infof("Card deleted: %s", id)
	return nil
}

// AddCharge records a card purchase and spreads it across its invoice
// months. The charge and its installments are persisted atomically.
func (s *Service) AddCharge(cardID string, p ChargeParams) (*models.Charge, error) {
	card, err := s.repo.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	if p.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if p.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if p.Installments < 1 {
		p.Installments = 1
	}
	purchaseMonth, err := schedule.MonthOf(p.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	first := purchaseMonth
	if p.FirstMonth != "" {
		if first, err = schedule.ParseMonth(p.FirstMonth); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	charge := &models.Charge{
		ID:           uuid.NewString(),
		CardID:       card.ID,
		Date:         p.Date,
		Description:  p.Description,
		Amount:       p.Amount,
		Installments: p.Installments,
		FirstMonth:   first.String(),
	}
	rows := schedule.Spread(p.Amount, p.Installments, first)
	installments := make([]models.CardInstallment, 0, len(rows))
	for _, r := range rows {
		installments = append(installments, models.CardInstallment{
			ID:          uuid.NewString(),
			ChargeID:    charge.ID,
			CardID:      card.ID,
			Index:       r.Index,
			Count:       r.Count,
			Month:       r.Month.String(),
			Amount:      r.Amount,
			Status:      models.StatusPending,
			Description: charge.Description,
		})
	}
	if err := s.repo.CreateCharge(charge, installments); err != nil {
		return nil, err
	}
	s.log.Infof("Charge added to card %s: %s %.2f in %d installment(s)",
		card.Name, charge.Description, charge.Amount, charge.Installments)
	return charge, nil
}

// ListCharges returns all purchases of a card
func (s *Service) ListCharges(cardID string) ([]models.Charge, error) {
	if _, err := s.repo.GetCard(cardID); err != nil {
		return nil, err
	}
	return s.repo.ListCharges(cardID)
}

// DeleteCharge removes a purchase and its installments
func (s *Service) DeleteCharge(id string) error {
	return s.repo.DeleteCharge(id)
}

// CardInvoice returns the installments falling in one invoice month
func (s *Service) CardInvoice(cardID, month string) ([]models.CardInstallment, error) {
	m, err := schedule.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.repo.GetCard(cardID); err != nil {
		return nil, err
	}
	return s.repo.CardInstallmentsForMonth(cardID, m.String())
}

// ToggleCardInstallment flips an installment between pending and paid.
// Exactly one ledger entry is posted when the status transitions into
// paid; flipping back to pending does not retract it. The returned bool
// reports whether a ledger entry was posted.
func (s *Service) ToggleCardInstallment(id string) (*models.CardInstallment, bool, error) {
	in, err := s.repo.GetCardInstallment(id)
	if err != nil {
		return nil, false, err
	}
	next := models.StatusPaid
	if in.Status == models.StatusPaid {
		next = models.StatusPending
	}
	if err := s.repo.SetCardInstallmentStatus(id, next); err != nil {
		return nil, false, err
	}
	in.Status = next

	posted := false
	if next == models.StatusPaid {
		card, err := s.repo.GetCard(in.CardID)
		if err != nil {
			return in, false, nil
		}
		posted = s.bridge.PostCardInstallment(card, in)
	}
	return in, posted, nil
}

// CardSummary recomputes the card aggregates for the viewed month
func (s *Service) CardSummary(cardID, month string) (*schedule.CardTotals, error) {
	m, err := schedule.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	card, err := s.repo.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	installments, err := s.repo.CardInstallments(cardID)
	if err != nil {
		return nil, err
	}
	snaps := make([]schedule.InstallmentSnapshot, 0, len(installments))
	for _, in := range installments {
		snaps = append(snaps, schedule.InstallmentSnapshot{
			Month:  schedule.Month(in.Month),
			Amount: in.Amount,
			Paid:   in.Status == models.StatusPaid,
		})
	}
	totals := schedule.ComputeCardTotals(card.Limit, m, snaps)
	return &totals, nil
}

// RegisterInvoicePayment settles every pending installment of one invoice
// month and posts a single expense entry for the invoice total. Returns
// the settled total and whether the ledger entry landed.
func (s *Service) RegisterInvoicePayment(cardID, month string) (float64, bool, error) {
	m, err := schedule.ParseMonth(month)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	card, err := s.repo.GetCard(cardID)
	if err != nil {
		return 0, false, err
	}
	installments, err := s.repo.CardInstallmentsForMonth(cardID, m.String())
	if err != nil {
		return 0, false, err
	}
	var total float64
	var pending []models.CardInstallment
	for _, in := range installments {
		if in.Status != models.StatusPaid {
			pending = append(pending, in)
			total += in.Amount
		}
	}
	if len(pending) == 0 {
		return 0, false, fmt.Errorf("%w: no pending installments in %s", ErrValidation, m)
	}
	for _, in := range pending {
		if err := s.repo.SetCardInstallmentStatus(in.ID, models.StatusPaid); err != nil {
			return 0, false, err
		}
	}
	total = schedule.Round2(total)
	posted := s.bridge.PostInvoicePayment(card, m.String(), total)
	s.log.Infof("Invoice %s of card %s settled: %.2f", m, card.Name, total)
	return total, posted, nil
}
