package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/config"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/sirupsen/logrus"
)

type fixedFX struct {
	rate float64
	err  error
}

func (f fixedFX) Rate(ctx context.Context, base, to string) (float64, error) {
	return f.rate, f.err
}

func newTestClient(cgURL, avURL, avKey string, fx FXConverter) *Client {
	cfg := &config.Config{
		CoinGeckoURL:    cgURL,
		AlphaVantageURL: avURL,
		AlphaVantageKey: avKey,
	}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewClient(cfg, fx, log)
}

func TestQuoteCrypto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("ids"); got != "bitcoin" {
			t.Errorf("ids = %q, want bitcoin", got)
		}
		fmt.Fprint(w, `{"bitcoin":{"eur":54321.5,"eur_24h_change":-1.25}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "", "", nil)
	q, err := c.Quote(context.Background(), "btc", models.AssetCrypto, "EUR")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !q.Found {
		t.Fatal("expected quote to be found")
	}
	if q.Price != 54321.5 {
		t.Errorf("price = %v, want 54321.5", q.Price)
	}
	if q.Change24h != -1.25 {
		t.Errorf("change = %v, want -1.25", q.Change24h)
	}
	if q.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", q.Currency)
	}
}

func TestResolveCoinIDBySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"coins":[{"id":"wrapped-foo","symbol":"WFOO"},{"id":"foocoin","symbol":"FOO"}]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "", "", nil)
	id, err := c.ResolveCoinID(context.Background(), "foo")
	if err != nil {
		t.Fatalf("ResolveCoinID: %v", err)
	}
	if id != "foocoin" {
		t.Errorf("id = %q, want foocoin (exact symbol match preferred)", id)
	}

	// second lookup is served from the cache, no request made
	srv.Close()
	id, err = c.ResolveCoinID(context.Background(), "FOO")
	if err != nil {
		t.Fatalf("cached ResolveCoinID: %v", err)
	}
	if id != "foocoin" {
		t.Errorf("cached id = %q, want foocoin", id)
	}
}

func TestQuoteStockWithFX(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("function = %q, want GLOBAL_QUOTE", got)
		}
		fmt.Fprint(w, `{"Global Quote":{"01. symbol":"AAPL","05. price":"200.0000","10. change percent":"1.5000%"}}`)
	}))
	defer srv.Close()

	c := newTestClient("", srv.URL, "demo", fixedFX{rate: 0.9})
	q, err := c.Quote(context.Background(), "AAPL", models.AssetStock, "EUR")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !q.Found {
		t.Fatal("expected quote to be found")
	}
	if q.Price != 180 {
		t.Errorf("price = %v, want 180 (200 USD * 0.9)", q.Price)
	}
	if q.Change24h != 1.5 {
		t.Errorf("change = %v, want 1.5", q.Change24h)
	}
}

func TestQuoteStockWithoutKey(t *testing.T) {
	c := newTestClient("", "http://unused", "", nil)
	q, err := c.Quote(context.Background(), "AAPL", models.AssetStock, "EUR")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Found {
		t.Error("expected unpriced quote without an API key")
	}
}

func TestStockHistoryOrdered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Time Series (Daily)":{
			"2025-06-03":{"4. close":"12.00"},
			"2025-06-01":{"4. close":"10.00"},
			"2025-06-02":{"4. close":"11.00"}}}`)
	}))
	defer srv.Close()

	c := newTestClient("", srv.URL, "demo", nil)
	points, err := c.StockHistory(context.Background(), "AAPL", 2)
	if err != nil {
		t.Fatalf("StockHistory: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0] != 11 || points[1] != 12 {
		t.Errorf("points = %v, want [11 12] (oldest first, capped)", points)
	}
}

func TestCryptoHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin/market_chart" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"prices":[[1700000000000,100.5],[1700086400000,101.25]]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "", "", nil)
	points, err := c.CryptoHistory(context.Background(), "bitcoin", "EUR", 7)
	if err != nil {
		t.Fatalf("CryptoHistory: %v", err)
	}
	if len(points) != 2 || points[0] != 100.5 || points[1] != 101.25 {
		t.Errorf("points = %v, want [100.5 101.25]", points)
	}
}
