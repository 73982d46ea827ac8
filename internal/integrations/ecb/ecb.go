package ecb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/config"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// Client fetches the European Central Bank daily reference rates. The
// feed is EUR-based: every rate is the amount of the quoted currency one
// euro buys.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger

	mu        sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
}

// NewClient initializes a new ECB client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.ECBURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch downloads and parses the daily reference-rate XML
func (c *Client) fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("ECB XML response: %s", string(body))
	return parseRates(body)
}

// parseRates extracts the currency/rate pairs from the feed
func parseRates(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	cubes := doc.FindElements("//Cube[@currency]")
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no reference rates found in XML")
	}

	rates := map[string]float64{"EUR": 1}
	for _, cube := range cubes {
		currency := cube.SelectAttrValue("currency", "")
		rateText := cube.SelectAttrValue("rate", "")
		rate, err := strconv.ParseFloat(rateText, 64)
		if err != nil || currency == "" {
			return nil, fmt.Errorf("malformed rate entry %q=%q", currency, rateText)
		}
		rates[currency] = rate
	}
	return rates, nil
}

// rateTable returns the cached table, refreshing it at most hourly. The
// feed itself only changes once per business day.
func (c *Client) rateTable(ctx context.Context) (map[string]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rates != nil && time.Since(c.fetchedAt) < time.Hour {
		return c.rates, nil
	}
	rates, err := c.fetch(ctx)
	if err != nil {
		if c.rates != nil {
			c.log.Warnf("Failed to refresh ECB rates, serving stale table: %v", err)
			return c.rates, nil
		}
		return nil, err
	}
	c.rates = rates
	c.fetchedAt = time.Now()
	c.log.Infof("Loaded %d ECB reference rates", len(rates))
	return rates, nil
}

// Rate returns how many units of the target currency one unit of the
// base currency buys
func (c *Client) Rate(ctx context.Context, base, to string) (float64, error) {
	if base == to {
		return 1, nil
	}
	rates, err := c.rateTable(ctx)
	if err != nil {
		return 0, err
	}
	baseRate, ok := rates[base]
	if !ok || baseRate == 0 {
		return 0, fmt.Errorf("unknown currency %q", base)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", to)
	}
	return toRate / baseRate, nil
}
