package service

import (
	"context"
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HoldingParams carries user input for a portfolio position
type HoldingParams struct {
	Symbol      string  `json:"symbol"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	ManualPrice float64 `json:"manual_price"`
}

func (p *HoldingParams) validate() error {
	if p.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrValidation)
	}
	switch p.Type {
	case models.AssetCrypto, models.AssetStock, models.AssetManual:
	default:
		return fmt.Errorf("%w: type must be crypto, stock or manual", ErrValidation)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if p.Type == models.AssetManual && p.ManualPrice <= 0 {
		return fmt.Errorf("%w: manual assets need a positive unit price", ErrValidation)
	}
	return nil
}

// AddHolding creates a new portfolio position
func (s *Service) AddHolding(p HoldingParams) (*models.Holding, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	h := &models.Holding{
		ID:          uuid.NewString(),
		Symbol:      p.Symbol,
		Type:        p.Type,
		Quantity:    p.Quantity,
		ManualPrice: p.ManualPrice,
	}
	if err := s.repo.CreateHolding(h); err != nil {
		return nil, err
	}
	s.log.Infof("Holding added: %s x%.8f", h.Symbol, h.Quantity)
	return h, nil
}

// ListHoldings returns every portfolio position
func (s *Service) ListHoldings() ([]models.Holding, error) {
	return s.repo.ListHoldings()
}

// UpdateHolding updates a position's quantity and manual price
func (s *Service) UpdateHolding(id string, p HoldingParams) (*models.Holding, error) {
	h, err := s.repo.GetHolding(id)
	if err != nil {
		return nil, err
	}
	p.Symbol = h.Symbol
	p.Type = h.Type
	if err := p.validate(); err != nil {
		return nil, err
	}
	h.Quantity = p.Quantity
	h.ManualPrice = p.ManualPrice
	if err := s.repo.UpdateHolding(h); err != nil {
		return nil, err
	}
	return h, nil
}

// DeleteHolding removes a position
func (s *Service) DeleteHolding(id string) error {
	return s.repo.DeleteHolding(id)
}

// PortfolioValuation values every holding at its live (or manual) unit
// price. Price lookups are best-effort: an asset that cannot be priced
// contributes zero and is flagged Priced=false instead of failing the
// whole valuation. Multiplication goes through decimals so large crypto
// quantities do not accumulate float drift.
func (s *Service) PortfolioValuation(ctx context.Context, currency string) (*models.PortfolioValuation, error) {
	if currency == "" {
		currency = "EUR"
	}
	holdings, err := s.repo.ListHoldings()
	if err != nil {
		return nil, err
	}

	out := &models.PortfolioValuation{Currency: currency}
	total := decimal.Zero
	for _, h := range holdings {
		pos := models.Position{Holding: h}
		switch {
		case h.Type == models.AssetManual:
			pos.UnitPrice = h.ManualPrice
			pos.Priced = true
		case s.prices != nil:
			q, err := s.prices.Quote(ctx, h.Symbol, h.Type, currency)
			if err != nil {
				s.log.Warnf("Failed to price %s: %v", h.Symbol, err)
			} else if q.Found {
				pos.UnitPrice = q.Price
				pos.Priced = true
			}
		}
		if pos.Priced {
			value := decimal.NewFromFloat(h.Quantity).
				Mul(decimal.NewFromFloat(pos.UnitPrice)).
				Round(2)
			pos.Value, _ = value.Float64()
			total = total.Add(value)
		}
		out.Positions = append(out.Positions, pos)
	}
	out.Total, _ = total.Round(2).Float64()
	return out, nil
}
