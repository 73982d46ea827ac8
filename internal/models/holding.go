package models

import "time"

// Asset type values for portfolio holdings
const (
	AssetCrypto = "crypto"
	AssetStock  = "stock"
	AssetManual = "manual"
)

// Holding represents one position in the investment portfolio
type Holding struct {
	ID          string  `json:"id"`
	Symbol      string  `json:"symbol"` // e.g. BTC, AAPL
	Type        string  `json:"type"`   // AssetCrypto | AssetStock | AssetManual
	Quantity    float64 `json:"quantity"`
	ManualPrice float64 `json:"manual_price"` // unit price for AssetManual, EUR

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Quote is a live unit price for one asset
type Quote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"` // null upstream becomes 0 with Found=false
	Change24h float64 `json:"change_24h"`
	Currency  string  `json:"currency"`
	Found     bool    `json:"found"`
}

// Position is a holding valued at its current quote
type Position struct {
	Holding
	UnitPrice float64 `json:"unit_price"`
	Value     float64 `json:"value"`
	Priced    bool    `json:"priced"`
}

// PortfolioValuation is the portfolio summed up in one currency
type PortfolioValuation struct {
	Currency  string     `json:"currency"`
	Total     float64    `json:"total"`
	Positions []Position `json:"positions"`
}
