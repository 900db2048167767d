package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cheertaboi/bookstore-locale-service/internal/api/middleware"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
)

type ManualLocationRequest struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city,omitempty"`
}

type LocationHandler struct{}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

// GetLocation handles GET /location
// the first call in a session runs detection
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	s := middleware.SessionFrom(r.Context())
	state := s.Location.Initialize(r.Context(), middleware.ClientIP(r))
	writeJSON(w, http.StatusOK, state)
}

// SetLocation handles PUT /location
func (h *LocationHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req ManualLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	s := middleware.SessionFrom(r.Context())
	state, err := s.Location.SetManualLocation(models.LocationInfo{
		Country:     req.Country,
		CountryCode: req.CountryCode,
		City:        req.City,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidCountry) {
			writeError(w, http.StatusBadRequest, "invalid_country_code")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// ClearLocation handles DELETE /location
func (h *LocationHandler) ClearLocation(w http.ResponseWriter, r *http.Request) {
	s := middleware.SessionFrom(r.Context())
	state := s.Location.ClearManualLocation(r.Context(), middleware.ClientIP(r))
	writeJSON(w, http.StatusOK, state)
}
