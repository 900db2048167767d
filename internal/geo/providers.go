package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/resty.v1"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

const (
	DefaultIPAPIURL  = "https://ipapi.co"
	DefaultIPInfoURL = "https://ipinfo.io"
)

func newRestClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// IPAPIProvider queries ipapi.co.
type IPAPIProvider struct {
	client  *resty.Client
	baseURL string
}

type ipapiResponse struct {
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Timezone    string `json:"timezone"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

func NewIPAPIProvider(baseURL string, timeout time.Duration) *IPAPIProvider {
	if baseURL == "" {
		baseURL = DefaultIPAPIURL
	}
	return &IPAPIProvider{client: newRestClient(timeout), baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (p *IPAPIProvider) Name() string { return "ipapi.co" }

func (p *IPAPIProvider) Lookup(ctx context.Context, ip string) (*models.LocationInfo, error) {
	url := p.baseURL + "/json/"
	if ip != "" {
		url = p.baseURL + "/" + ip + "/json/"
	}

	resp, err := p.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	var body ipapiResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	if body.Error {
		return nil, fmt.Errorf("provider error: %s", body.Reason)
	}

	return &models.LocationInfo{
		Country:     body.CountryName,
		CountryCode: body.CountryCode,
		City:        body.City,
		Region:      body.Region,
		Timezone:    body.Timezone,
	}, nil
}

// IPInfoProvider queries ipinfo.io, which only returns a country code.
type IPInfoProvider struct {
	client  *resty.Client
	baseURL string
	token   string
}

type ipinfoResponse struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Timezone string `json:"timezone"`
	Bogon    bool   `json:"bogon"`
}

func NewIPInfoProvider(baseURL, token string, timeout time.Duration) *IPInfoProvider {
	if baseURL == "" {
		baseURL = DefaultIPInfoURL
	}
	return &IPInfoProvider{
		client:  newRestClient(timeout),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}
}

func (p *IPInfoProvider) Name() string { return "ipinfo.io" }

func (p *IPInfoProvider) Lookup(ctx context.Context, ip string) (*models.LocationInfo, error) {
	url := p.baseURL + "/json"
	if ip != "" {
		url = p.baseURL + "/" + ip + "/json"
	}

	req := p.client.R().SetContext(ctx)
	if p.token != "" {
		req.SetQueryParam("token", p.token)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	var body ipinfoResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	if body.Bogon {
		return nil, fmt.Errorf("bogon address %q", ip)
	}

	return &models.LocationInfo{
		CountryCode: body.Country,
		City:        body.City,
		Region:      body.Region,
		Timezone:    body.Timezone,
	}, nil
}
