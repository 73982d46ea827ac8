package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
)

// Quotes proxies live prices for a comma separated list of symbols.
// Crypto by default; ?type=stock switches to the stock source.
func (h *Handler) Quotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symbols := strings.Split(q.Get("symbols"), ",")
	currency := q.Get("currency")
	if currency == "" {
		currency = "EUR"
	}
	assetType := q.Get("type")
	if assetType == "" {
		assetType = models.AssetCrypto
	}

	out := make([]models.Quote, 0, len(symbols))
	for _, sym := range symbols {
		sym = strings.TrimSpace(sym)
		if sym == "" {
			continue
		}
		quote, err := h.quotes.Quote(r.Context(), sym, assetType, currency)
		if err != nil {
			h.log.Warnf("Quote lookup failed for %s: %v", sym, err)
			quote = models.Quote{Symbol: strings.ToUpper(sym), Currency: strings.ToUpper(currency)}
		}
		out = append(out, quote)
	}
	h.respondJSON(w, http.StatusOK, out)
}

// History proxies daily close history for one symbol
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symbol := q.Get("symbol")
	if symbol == "" {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "symbol is required"})
		return
	}
	currency := q.Get("currency")
	if currency == "" {
		currency = "EUR"
	}
	days, err := strconv.Atoi(q.Get("days"))
	if err != nil || days < 1 {
		days = 30
	}

	var points []float64
	switch q.Get("type") {
	case models.AssetStock:
		points, err = h.quotes.StockHistory(r.Context(), symbol, days)
	default:
		var id string
		id, err = h.quotes.ResolveCoinID(r.Context(), symbol)
		if err == nil {
			points, err = h.quotes.CryptoHistory(r.Context(), id, currency, days)
		}
	}
	if err != nil {
		h.respondJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbol": strings.ToUpper(symbol),
		"days":   days,
		"points": points,
	})
}

// FXRate proxies a reference exchange rate between two currencies
func (h *Handler) FXRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	base := q.Get("base")
	if base == "" {
		base = "EUR"
	}
	to := q.Get("to")
	if to == "" {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "to currency is required"})
		return
	}
	rate, err := h.fx.Rate(r.Context(), base, to)
	if err != nil {
		h.respondJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"base": strings.ToUpper(base),
		"to":   strings.ToUpper(to),
		"rate": rate,
	})
}
