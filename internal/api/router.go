package api

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/bookstore-locale-service/internal/api/handlers"
	"github.com/Cheertaboi/bookstore-locale-service/internal/api/middleware"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
	"github.com/Cheertaboi/bookstore-locale-service/internal/session"
)

type Deps struct {
	Sessions *session.Manager
	Rates    *service.ExchangeRateService
	Coupons  *service.CouponService
	Shipping *service.ShippingService
	// Limiter is optional
	Limiter *middleware.RateLimiter
	// TrustedProxies may set X-Forwarded-For; empty means use the peer address
	TrustedProxies []*net.IPNet
}

// NewRouter builds the HTTP router for the locale-service
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP(d.TrustedProxies))
	r.Use(middleware.Logger)
	if d.Limiter != nil {
		r.Use(d.Limiter.Middleware)
	}

	sessionHandler := handlers.NewSessionHandler(d.Sessions)
	locationHandler := handlers.NewLocationHandler()
	currencyHandler := handlers.NewCurrencyHandler()
	ratesHandler := handlers.NewRatesHandler(d.Rates)
	couponHandler := handlers.NewCouponHandler(d.Coupons)
	shippingHandler := handlers.NewShippingHandler(d.Shipping)

	r.Post("/sessions", sessionHandler.CreateSession)
	r.Delete("/sessions", sessionHandler.EndSession)

	r.Get("/currencies", currencyHandler.ListCurrencies)

	r.Route("/rates", func(r chi.Router) {
		r.Get("/", ratesHandler.GetRates)
		r.Post("/refresh", ratesHandler.RefreshRates)
	})
	r.Get("/prices/convert", ratesHandler.ConvertPrice)

	r.Get("/api/shipping-rates/country/{countryCode}", shippingHandler.GetShippingRate)

	// Session endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(d.Sessions))

		r.Get("/location", locationHandler.GetLocation)
		r.Put("/location", locationHandler.SetLocation)
		r.Delete("/location", locationHandler.ClearLocation)

		r.Get("/currency", currencyHandler.GetCurrency)
		r.Put("/currency", currencyHandler.SetCurrency)
		r.Delete("/currency", currencyHandler.ClearCurrency)

		r.Route("/coupons", func(r chi.Router) {
			r.Get("/", couponHandler.ListCoupons)
			r.Post("/eligible", couponHandler.EligibleCoupon)
			r.Post("/validate", couponHandler.ValidateCoupon)
		})
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
