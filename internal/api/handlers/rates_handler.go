package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
)

type RatesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Stale     bool               `json:"stale"`
	Error     string             `json:"error,omitempty"`
}

type ConvertResponse struct {
	models.ConvertedPrice
	From      string `json:"from"`
	To        string `json:"to"`
	Formatted string `json:"formatted"`
}

type RatesHandler struct {
	rates *service.ExchangeRateService
}

func NewRatesHandler(rates *service.ExchangeRateService) *RatesHandler {
	return &RatesHandler{rates: rates}
}

// GetRates handles GET /rates?base=
// a stale table is still served, flagged, when the refetch failed
func (h *RatesHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	base, ok := h.base(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported_currency")
		return
	}
	rates, err := h.rates.GetExchangeRates(r.Context(), base)
	if rates == nil {
		writeError(w, http.StatusServiceUnavailable, "rates_unavailable")
		return
	}
	writeJSON(w, http.StatusOK, h.response(base, rates, err))
}

// RefreshRates handles POST /rates/refresh?base=
func (h *RatesHandler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	base, ok := h.base(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported_currency")
		return
	}
	rates, err := h.rates.RefreshRates(r.Context(), base)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "rates_unavailable", "detail": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.response(base, rates, nil))
}

// ConvertPrice handles GET /prices/convert?amount=&from=&to=
func (h *RatesHandler) ConvertPrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to required")
		return
	}

	conv, err := h.rates.ConvertPrice(r.Context(), amount, from, to)
	if err != nil {
		if errors.Is(err, models.ErrConversionUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "conversion_unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		ConvertedPrice: conv,
		From:           from,
		To:             to,
		Formatted:      service.FormatPrice(service.RoundForCurrency(conv.ConvertedAmount, to).InexactFloat64(), to),
	})
}

// base is the ?base= currency, or the service base when absent. It reports
// false for currencies outside the supported set.
func (h *RatesHandler) base(r *http.Request) (string, bool) {
	b := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("base")))
	if b == "" {
		return h.rates.Base(), true
	}
	if _, ok := service.LookupCurrency(b); !ok {
		return "", false
	}
	return b, true
}

func (h *RatesHandler) response(base string, rates map[string]float64, err error) RatesResponse {
	resp := RatesResponse{Base: base, Rates: rates}
	if entry, ok, fresh := h.rates.Entry(base); ok {
		resp.FetchedAt = entry.FetchedAt
		resp.Stale = !fresh
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
