// Package cryptoapis fetches address listings from the Crypto APIs blockchain data service.
package cryptoapis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/raw"
	"github.com/goodnatureofminers/ledger7000-backend/pkg/safe"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
)

const (
	apiKeyHeader = "X-API-Key"

	maxErrorBody = 512
)

// Config describes how to reach the provider.
type Config struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`
	// PageSize is the limit query parameter of listing requests.
	PageSize int `validate:"min=1,max=50"`
	// MaxPages bounds a single listing.
	MaxPages int `validate:"min=1"`
	// RPS paces every request issued by the client.
	RPS int `validate:"min=1"`
}

// Client is a paginated Crypto APIs reader.
type Client struct {
	cfg            Config
	httpClient     *retryablehttp.Client
	limiter        ratelimit.Limiter
	metricsFactory MetricsFactory

	mu      sync.Mutex
	metrics map[model.LedgerKey]Metrics
}

// NewClient validates cfg and builds a client on top of httpClient.
func NewClient(cfg Config, httpClient *retryablehttp.Client, metricsFactory MetricsFactory) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid provider config: %w", err)
	}
	return &Client{
		cfg:            cfg,
		httpClient:     httpClient,
		limiter:        ratelimit.New(cfg.RPS),
		metricsFactory: metricsFactory,
		metrics:        make(map[model.LedgerKey]Metrics),
	}, nil
}

// FetchRawBatches reads every page of the category listing of key and returns the
// items as one JSON array, in provider order. The listing ends at the first empty page.
func (c *Client) FetchRawBatches(ctx context.Context, key model.LedgerKey, category model.Category) (batch json.RawMessage, err error) {
	m := c.metricsFor(key)
	started := time.Now()
	defer func() {
		m.Observe("fetch_"+strings.ReplaceAll(string(category), "-", "_"), err, started)
	}()

	pages := make([]json.RawMessage, 0, 1)
	for page := 0; ; page++ {
		if page >= c.cfg.MaxPages {
			return nil, fmt.Errorf("%s %s: %w (%d)", key, category, ErrTooManyPages, c.cfg.MaxPages)
		}

		endpoint, err := c.listURL(key, category, page*c.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		var env listEnvelope
		if err := c.get(ctx, endpoint, &env); err != nil {
			return nil, fmt.Errorf("%s %s offset %d: %w", key, category, page*c.cfg.PageSize, err)
		}
		m.ObservePage(category, len(env.Data.Items))
		if len(env.Data.Items) == 0 {
			break
		}

		items, err := json.Marshal(env.Data.Items)
		if err != nil {
			return nil, err
		}
		pages = append(pages, items)
	}
	return raw.Concat(pages...)
}

// AddressSummary returns the balance and totals the provider reports for key.
func (c *Client) AddressSummary(ctx context.Context, key model.LedgerKey) (summary model.Summary, err error) {
	m := c.metricsFor(key)
	started := time.Now()
	defer func() {
		m.Observe("address_summary", err, started)
	}()

	endpoint, err := c.addressURL(key, "")
	if err != nil {
		return model.Summary{}, err
	}
	var env summaryEnvelope
	if err := c.get(ctx, endpoint.String(), &env); err != nil {
		return model.Summary{}, fmt.Errorf("%s summary: %w", key, err)
	}

	item := env.Data.Item
	if summary.TxCount, err = safe.Uint64(item.TransactionsCount); err != nil {
		return model.Summary{}, fmt.Errorf("%s transactions count: %w", key, err)
	}
	if summary.Balance, err = parseAmount(item.ConfirmedBalance); err != nil {
		return model.Summary{}, fmt.Errorf("%s balance: %w", key, err)
	}
	if summary.Funded, err = parseAmount(item.TotalReceived); err != nil {
		return model.Summary{}, fmt.Errorf("%s total received: %w", key, err)
	}
	if summary.Spent, err = parseAmount(item.TotalSpent); err != nil {
		return model.Summary{}, fmt.Errorf("%s total spent: %w", key, err)
	}
	return summary, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	c.limiter.Take()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return statusError(res)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) listURL(key model.LedgerKey, category model.Category, offset int) (string, error) {
	u, err := c.addressURL(key, string(category))
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.cfg.PageSize))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) addressURL(key model.LedgerKey, category string) (*url.URL, error) {
	blockchain, network, err := route(key.Chain, key.Network)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	u = u.JoinPath("blockchain-data", blockchain, network, "addresses", key.Address)
	if category != "" {
		u = u.JoinPath(category)
	}
	return u, nil
}

func (c *Client) metricsFor(key model.LedgerKey) Metrics {
	k := model.LedgerKey{Chain: key.Chain, Network: key.Network}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.metrics[k]; ok {
		return m
	}
	m := c.metricsFactory(key.Chain, key.Network)
	c.metrics[k] = m
	return m
}

func statusError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		return fmt.Errorf("%w: %d %s: %s", ErrUnexpectedStatus, res.StatusCode, env.Error.Code, env.Error.Message)
	}
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, res.StatusCode, strings.TrimSpace(string(body)))
}

func parseAmount(a amountWire) (decimal.Decimal, error) {
	if a.Amount == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(a.Amount)
}
