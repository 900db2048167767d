package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cheertaboi/bookstore-locale-service/internal/api/middleware"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
)

type CurrencyResponse struct {
	models.CurrencyInfo
	Explicit bool `json:"explicit"`
}

type SetCurrencyRequest struct {
	Currency string `json:"currency"`
}

type CurrencyHandler struct{}

func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// ListCurrencies handles GET /currencies
func (h *CurrencyHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"currencies": service.SupportedCurrencies(),
	})
}

// GetCurrency handles GET /currency
func (h *CurrencyHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	s := middleware.SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, h.current(r, s.Currency))
}

// SetCurrency handles PUT /currency
func (h *CurrencyHandler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	var req SetCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	s := middleware.SessionFrom(r.Context())
	if err := s.Currency.SetPreferredCurrency(req.Currency); err != nil {
		if errors.Is(err, models.ErrUnsupportedCurrency) {
			writeError(w, http.StatusBadRequest, "unsupported_currency")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, h.current(r, s.Currency))
}

// ClearCurrency handles DELETE /currency
func (h *CurrencyHandler) ClearCurrency(w http.ResponseWriter, r *http.Request) {
	s := middleware.SessionFrom(r.Context())
	s.Currency.ClearPreferredCurrency()
	writeJSON(w, http.StatusOK, h.current(r, s.Currency))
}

func (h *CurrencyHandler) current(r *http.Request, cur *service.CurrencyResolver) CurrencyResponse {
	code := cur.GetPreferredCurrency(r.Context(), middleware.ClientIP(r))
	info, ok := service.LookupCurrency(code)
	if !ok {
		info = models.CurrencyInfo{Code: code, Symbol: code, Name: code}
	}
	return CurrencyResponse{CurrencyInfo: info, Explicit: cur.HasPreference()}
}
