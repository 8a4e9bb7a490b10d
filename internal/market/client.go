package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketscan/internal/config"
)

// Client queries the market priceoverview endpoint. One call issues exactly
// one request; retry orchestration belongs to the Resolver.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
}

type overviewResponse struct {
	Success     bool   `json:"success"`
	LowestPrice string `json:"lowest_price"`
	MedianPrice string `json:"median_price"`
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.SteamTimeoutMs) * time.Millisecond},
	}
}

// PriceOverview returns the display price string for a market hash name,
// preferring lowest_price over median_price. Errors are ErrNoPriceListed,
// ErrAPIUnsuccessful or a *TransportError.
func (c *Client) PriceOverview(ctx context.Context, name string) (string, error) {
	u, err := url.Parse(c.cfg.SteamAPIBaseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("country", c.cfg.SteamCountry)
	q.Set("currency", strconv.Itoa(c.cfg.SteamCurrency))
	q.Set("appid", strconv.Itoa(c.cfg.SteamAppID))
	q.Set("market_hash_name", name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.cfg.SteamUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "request", Err: err}
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", &TransportError{Op: "read", Err: readErr}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Op: "status", Err: fmt.Errorf("market status %d", resp.StatusCode)}
	}

	var payload overviewResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &TransportError{Op: "decode", Err: err}
	}
	if !payload.Success {
		return "", ErrAPIUnsuccessful
	}

	price := payload.LowestPrice
	if price == "" {
		price = payload.MedianPrice
	}
	if price == "" {
		return "", ErrNoPriceListed
	}
	return price, nil
}
