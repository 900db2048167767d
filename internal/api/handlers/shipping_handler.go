package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
)

type ShippingHandler struct {
	service *service.ShippingService
}

func NewShippingHandler(svc *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{service: svc}
}

// GetShippingRate handles GET /api/shipping-rates/country/{countryCode}
func (h *ShippingHandler) GetShippingRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.service.GetShippingRate(r.Context(), chi.URLParam(r, "countryCode"))
	if err != nil {
		if errors.Is(err, models.ErrInvalidCountry) {
			writeError(w, http.StatusBadRequest, "invalid_country_code")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, rate)
}
