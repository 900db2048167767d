// Package geo resolves a client IP to a country using hosted geolocation
// services, tried in order, each raced against a timer.
package geo

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

const DefaultTimeout = 5 * time.Second

// Provider is one geolocation strategy.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (*models.LocationInfo, error)
}

// DefaultLocation is what callers substitute when every provider failed.
func DefaultLocation() models.LocationInfo {
	return models.LocationInfo{Country: "United States", CountryCode: "US"}
}

type Resolver struct {
	providers []Provider
	timeout   time.Duration
}

func NewResolver(timeout time.Duration, providers ...Provider) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{providers: providers, timeout: timeout}
}

// ResolveLocation returns the first usable provider answer, or nil when all
// providers failed. Failures are logged, never returned.
func (r *Resolver) ResolveLocation(ctx context.Context, ip string) *models.LocationInfo {
	ip = lookupIP(ip)
	for _, p := range r.providers {
		if ctx.Err() != nil {
			break
		}
		info, err := r.race(ctx, p, ip)
		if err != nil {
			logger.Warn("geolocation provider failed",
				zap.String("provider", p.Name()),
				zap.Error(err))
			continue
		}
		logger.Debug("geolocation resolved",
			zap.String("provider", p.Name()),
			zap.String("country_code", info.CountryCode))
		return info
	}
	logger.Warn("geolocation exhausted all providers")
	return nil
}

type lookupResult struct {
	info *models.LocationInfo
	err  error
}

func (r *Resolver) race(ctx context.Context, p Provider, ip string) (*models.LocationInfo, error) {
	lookupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so a lookup that loses the race can still send and exit
	ch := make(chan lookupResult, 1)
	go func() {
		info, err := p.Lookup(lookupCtx, ip)
		ch <- lookupResult{info: info, err: err}
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		return normalize(res.info)
	case <-timer.C:
		return nil, fmt.Errorf("timed out after %s", r.timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func normalize(info *models.LocationInfo) (*models.LocationInfo, error) {
	if info == nil {
		return nil, fmt.Errorf("empty response")
	}
	out := *info
	out.CountryCode = strings.ToUpper(strings.TrimSpace(out.CountryCode))
	if !ValidCountryCode(out.CountryCode) {
		return nil, fmt.Errorf("malformed country code %q", info.CountryCode)
	}
	if out.Country == "" {
		out.Country = CountryName(out.CountryCode)
	}
	if out.Country == "" {
		out.Country = out.CountryCode
	}
	return &out, nil
}

// lookupIP drops addresses a public provider cannot locate; an empty IP makes
// providers geolocate the caller's egress address instead.
func lookupIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return ""
	}
	return parsed.String()
}
