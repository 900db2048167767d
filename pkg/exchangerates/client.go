// Package exchangerates is a client for an open.er-api.com compatible
// exchange-rate endpoint.
package exchangerates

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cheertaboi/bookstore-locale-service/pkg/httpclient"
)

const DefaultBaseURL = "https://open.er-api.com"

type latestResponse struct {
	Result    string             `json:"result"`
	ErrorType string             `json:"error-type"`
	BaseCode  string             `json:"base_code"`
	Rates     map[string]float64 `json:"rates"`
}

// Error is a logical failure reported inside a 200 response.
type Error struct {
	Base    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("exchange rate provider error for %s: %s", e.Base, e.Message)
}

type Client struct {
	http *httpclient.Client
}

func NewClient(baseURL string, options ...httpclient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	options = append([]httpclient.ClientOption{httpclient.WithBaseURL(baseURL)}, options...)
	return &Client{http: httpclient.New(options...)}
}

// LatestRates returns units of each currency per one unit of base.
func (c *Client) LatestRates(ctx context.Context, base string) (map[string]float64, error) {
	base = strings.ToUpper(base)
	if base == "" {
		return nil, fmt.Errorf("base currency cannot be empty")
	}

	var resp latestResponse
	if err := c.http.GetJSON(ctx, "/v6/latest/"+base, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", base, err)
	}

	if resp.Result != "success" {
		msg := resp.ErrorType
		if msg == "" {
			msg = "result " + resp.Result
		}
		return nil, &Error{Base: base, Message: msg}
	}
	if len(resp.Rates) == 0 {
		return nil, &Error{Base: base, Message: "empty rate table"}
	}

	rates := make(map[string]float64, len(resp.Rates))
	for code, rate := range resp.Rates {
		if rate > 0 {
			rates[strings.ToUpper(code)] = rate
		}
	}
	rates[base] = 1
	return rates, nil
}
