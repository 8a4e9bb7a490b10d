package market

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"

	"marketscan/internal/config"
)

func testClientConfig() config.Config {
	return config.Config{
		SteamAPIBaseURL: "https://market.test/priceoverview/",
		SteamCountry:    "PH",
		SteamCurrency:   18,
		SteamAppID:      570,
		SteamTimeoutMs:  1000,
		SteamUserAgent:  "test-agent",
	}
}

func newTestClient(cfg config.Config, responder httpmock.Responder) *Client {
	c := NewClient(cfg)
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", cfg.SteamAPIBaseURL, responder)
	c.httpClient.Transport = transport
	return c
}

func TestPriceOverviewPrefersLowestPrice(t *testing.T) {
	c := newTestClient(testClientConfig(), httpmock.NewStringResponder(200,
		`{"success":true,"lowest_price":"₱34.38","median_price":"₱36.00"}`))

	price, err := c.PriceOverview(context.Background(), "Dragon's Blade")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != "₱34.38" {
		t.Fatalf("price = %q, want ₱34.38", price)
	}
}

func TestPriceOverviewFallsBackToMedian(t *testing.T) {
	c := newTestClient(testClientConfig(), httpmock.NewStringResponder(200,
		`{"success":true,"median_price":"₱36.00"}`))

	price, err := c.PriceOverview(context.Background(), "Gem")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != "₱36.00" {
		t.Fatalf("price = %q, want ₱36.00", price)
	}
}

func TestPriceOverviewNoPriceListed(t *testing.T) {
	c := newTestClient(testClientConfig(), httpmock.NewStringResponder(200, `{"success":true}`))

	_, err := c.PriceOverview(context.Background(), "Gem")
	if !errors.Is(err, ErrNoPriceListed) {
		t.Fatalf("err = %v, want ErrNoPriceListed", err)
	}
}

func TestPriceOverviewAPIUnsuccessful(t *testing.T) {
	c := newTestClient(testClientConfig(), httpmock.NewStringResponder(200, `{"success":false}`))

	_, err := c.PriceOverview(context.Background(), "Gem")
	if !errors.Is(err, ErrAPIUnsuccessful) {
		t.Fatalf("err = %v, want ErrAPIUnsuccessful", err)
	}
}

func TestPriceOverviewTransportFailures(t *testing.T) {
	cases := []struct {
		name      string
		responder httpmock.Responder
		op        string
	}{
		{name: "non-200 status", responder: httpmock.NewStringResponder(500, "server error"), op: "status"},
		{name: "rate limited", responder: httpmock.NewStringResponder(429, ""), op: "status"},
		{name: "malformed payload", responder: httpmock.NewStringResponder(200, "<html>"), op: "decode"},
		{name: "connection error", responder: httpmock.NewErrorResponder(errors.New("dial refused")), op: "request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(testClientConfig(), tc.responder)
			_, err := c.PriceOverview(context.Background(), "Gem")

			var transport *TransportError
			if !errors.As(err, &transport) {
				t.Fatalf("err = %v, want *TransportError", err)
			}
			if transport.Op != tc.op {
				t.Fatalf("op = %q, want %q", transport.Op, tc.op)
			}
		})
	}
}

func TestPriceOverviewSendsQueryParams(t *testing.T) {
	cfg := testClientConfig()
	c := NewClient(cfg)
	transport := httpmock.NewMockTransport()
	var got map[string][]string
	transport.RegisterResponder("GET", cfg.SteamAPIBaseURL,
		func(req *http.Request) (*http.Response, error) {
			got = req.URL.Query()
			return httpmock.NewStringResponse(200, `{"success":true,"lowest_price":"₱1.00"}`), nil
		})
	c.httpClient.Transport = transport

	if _, err := c.PriceOverview(context.Background(), "x2 Gem"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"country":          "PH",
		"currency":         "18",
		"appid":            "570",
		"market_hash_name": "x2 Gem",
	}
	for key, value := range want {
		if len(got[key]) != 1 || got[key][0] != value {
			t.Fatalf("query %s = %v, want %q", key, got[key], value)
		}
	}
}
