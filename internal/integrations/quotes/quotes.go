package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/config"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/sirupsen/logrus"
)

// wellKnownCoins maps common tickers straight to CoinGecko ids, saving a
// search round-trip. Unknown tickers fall back to the search endpoint.
var wellKnownCoins = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"ADA":   "cardano",
	"SOL":   "solana",
	"XRP":   "ripple",
	"DOGE":  "dogecoin",
	"MATIC": "matic-network",
	"DOT":   "polkadot",
	"BNB":   "binancecoin",
	"LTC":   "litecoin",
	"AVAX":  "avalanche-2",
}

// FXConverter converts an amount's currency; the ECB client satisfies it
type FXConverter interface {
	Rate(ctx context.Context, base, to string) (float64, error)
}

// Client proxies price lookups to CoinGecko and Alpha Vantage
type Client struct {
	cgURL  string
	avURL  string
	avKey  string
	fx     FXConverter
	client *http.Client
	log    *logrus.Logger

	mu       sync.Mutex
	idOfSym  map[string]string // resolved CoinGecko ids, by upper-case symbol
}

// NewClient initializes a new quotes client
func NewClient(cfg *config.Config, fx FXConverter, log *logrus.Logger) *Client {
	return &Client{
		cgURL: strings.TrimRight(cfg.CoinGeckoURL, "/"),
		avURL: cfg.AlphaVantageURL,
		avKey: cfg.AlphaVantageKey,
		fx:    fx,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

// ResolveCoinID maps a crypto ticker to its CoinGecko id, preferring an
// exact symbol match from the search endpoint
func (c *Client) ResolveCoinID(ctx context.Context, symbol string) (string, error) {
	sym := strings.ToUpper(symbol)
	if id, ok := wellKnownCoins[sym]; ok {
		return id, nil
	}
	c.mu.Lock()
	id, ok := c.idOfSym[sym]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	var res struct {
		Coins []struct {
			ID     string `json:"id"`
			Symbol string `json:"symbol"`
		} `json:"coins"`
	}
	u := fmt.Sprintf("%s/search?query=%s", c.cgURL, url.QueryEscape(symbol))
	if err := c.getJSON(ctx, u, &res); err != nil {
		return "", err
	}
	if len(res.Coins) == 0 {
		return "", fmt.Errorf("no CoinGecko match for %q", symbol)
	}
	id = res.Coins[0].ID
	for _, coin := range res.Coins {
		if strings.EqualFold(coin.Symbol, symbol) {
			id = coin.ID
			break
		}
	}
	c.mu.Lock()
	if c.idOfSym == nil {
		c.idOfSym = map[string]string{}
	}
	c.idOfSym[sym] = id
	c.mu.Unlock()
	return id, nil
}

// CryptoPrices fetches simple prices (with 24h change) for CoinGecko ids
func (c *Client) CryptoPrices(ctx context.Context, ids []string, currency string) (map[string]map[string]float64, error) {
	if len(ids) == 0 {
		return map[string]map[string]float64{}, nil
	}
	cur := strings.ToLower(currency)
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s&include_24hr_change=true",
		c.cgURL, url.QueryEscape(strings.Join(ids, ",")), cur)
	out := map[string]map[string]float64{}
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CryptoHistory fetches daily close points for the last days
func (c *Client) CryptoHistory(ctx context.Context, id, currency string, days int) ([]float64, error) {
	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=%s&days=%d",
		c.cgURL, url.PathEscape(id), strings.ToLower(currency), days)
	var res struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := c.getJSON(ctx, u, &res); err != nil {
		return nil, err
	}
	points := make([]float64, 0, len(res.Prices))
	for _, p := range res.Prices {
		if len(p) == 2 {
			points = append(points, p[1])
		}
	}
	return points, nil
}

// StockQuote fetches the latest price (USD) and day change percentage
// for a stock symbol. Requires an Alpha Vantage key.
func (c *Client) StockQuote(ctx context.Context, symbol string) (float64, float64, error) {
	if c.avKey == "" {
		return 0, 0, fmt.Errorf("no Alpha Vantage key configured")
	}
	u := fmt.Sprintf("%s?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		c.avURL, url.QueryEscape(symbol), url.QueryEscape(c.avKey))
	var res struct {
		Quote map[string]string `json:"Global Quote"`
	}
	if err := c.getJSON(ctx, u, &res); err != nil {
		return 0, 0, err
	}
	price, err := strconv.ParseFloat(res.Quote["05. price"], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("no price for %q", symbol)
	}
	changeStr := strings.TrimSuffix(res.Quote["10. change percent"], "%")
	change, _ := strconv.ParseFloat(changeStr, 64)
	return price, change, nil
}

// StockHistory fetches up to days daily closes (USD), oldest first
func (c *Client) StockHistory(ctx context.Context, symbol string, days int) ([]float64, error) {
	if c.avKey == "" {
		return nil, fmt.Errorf("no Alpha Vantage key configured")
	}
	u := fmt.Sprintf("%s?function=TIME_SERIES_DAILY&symbol=%s&outputsize=compact&apikey=%s",
		c.avURL, url.QueryEscape(symbol), url.QueryEscape(c.avKey))
	var res struct {
		Series map[string]map[string]string `json:"Time Series (Daily)"`
	}
	if err := c.getJSON(ctx, u, &res); err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(res.Series))
	for d := range res.Series {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > days {
		dates = dates[len(dates)-days:]
	}
	points := make([]float64, 0, len(dates))
	for _, d := range dates {
		close, _ := strconv.ParseFloat(res.Series[d]["4. close"], 64)
		points = append(points, close)
	}
	return points, nil
}

// Quote resolves one asset to a live unit price in the given currency.
// Implements the service's PriceSource. Lookups are best-effort: a miss
// comes back with Found=false rather than an error where the upstream
// simply has no data.
func (c *Client) Quote(ctx context.Context, symbol, assetType, currency string) (models.Quote, error) {
	q := models.Quote{Symbol: strings.ToUpper(symbol), Currency: strings.ToUpper(currency)}
	switch assetType {
	case models.AssetCrypto:
		id, err := c.ResolveCoinID(ctx, symbol)
		if err != nil {
			return q, err
		}
		prices, err := c.CryptoPrices(ctx, []string{id}, currency)
		if err != nil {
			return q, err
		}
		cur := strings.ToLower(currency)
		if p, ok := prices[id][cur]; ok {
			q.Price = p
			q.Change24h = prices[id][cur+"_24h_change"]
			q.Found = true
		}
		return q, nil

	case models.AssetStock:
		if c.avKey == "" {
			// No key configured: stocks come back unpriced, not failed.
			return q, nil
		}
		priceUSD, change, err := c.StockQuote(ctx, symbol)
		if err != nil {
			return q, err
		}
		price := priceUSD
		if q.Currency != "USD" && c.fx != nil {
			rate, err := c.fx.Rate(ctx, "USD", q.Currency)
			if err != nil {
				c.log.Warnf("FX USD->%s unavailable, returning USD price: %v", q.Currency, err)
			} else {
				price = priceUSD * rate
			}
		}
		q.Price = price
		q.Change24h = change
		q.Found = true
		return q, nil

	default:
		return q, fmt.Errorf("unsupported asset type %q", assetType)
	}
}
