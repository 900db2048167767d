package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/api/middleware"
	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
)

type CouponListResponse struct {
	Currency string                   `json:"currency"`
	Coupons  []models.LocalizedCoupon `json:"coupons"`
}

type CouponHandler struct {
	service *service.CouponService
}

func NewCouponHandler(svc *service.CouponService) *CouponHandler {
	return &CouponHandler{service: svc}
}

// ListCoupons handles GET /coupons
// thresholds are shown in the session's currency
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	s := middleware.SessionFrom(r.Context())
	currency := s.Currency.GetPreferredCurrency(r.Context(), middleware.ClientIP(r))

	coupons, err := h.service.LocalizedCoupons(r.Context(), currency)
	if err != nil {
		logger.Error("list coupons failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed_list_coupons")
		return
	}
	if len(coupons) > 0 {
		currency = coupons[0].Currency
	}
	writeJSON(w, http.StatusOK, CouponListResponse{Currency: currency, Coupons: coupons})
}

// EligibleCoupon handles POST /coupons/eligible
func (h *CouponHandler) EligibleCoupon(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCart(w, r)
	if !ok {
		return
	}

	elig, err := h.service.Evaluate(r.Context(), cartSubtotal(req), req.Currency)
	if errors.Is(err, models.ErrInvalidAmount) {
		writeError(w, http.StatusBadRequest, "invalid subtotal")
		return
	}
	if err != nil {
		logger.Error("coupon evaluation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, elig)
}

// ValidateCoupon handles POST /coupons/validate
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCart(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.CouponCode) == "" {
		writeError(w, http.StatusBadRequest, "coupon_code required")
		return
	}

	resp, err := h.service.ValidateCoupon(r.Context(), req.CouponCode, cartSubtotal(req), req.Currency)
	if errors.Is(err, models.ErrInvalidAmount) {
		writeError(w, http.StatusBadRequest, "invalid subtotal")
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error", "detail": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeCart reads a cart body; the currency defaults to the session's.
func (h *CouponHandler) decodeCart(w http.ResponseWriter, r *http.Request) (models.CartRequest, bool) {
	var req models.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return req, false
	}
	if req.Subtotal != nil && !validAmount(*req.Subtotal) {
		writeError(w, http.StatusBadRequest, "subtotal must be a non-negative number")
		return req, false
	}
	for _, it := range req.CartItems {
		if !validAmount(it.Price) || it.Qty < 0 {
			writeError(w, http.StatusBadRequest, "invalid cart item "+it.ID)
			return req, false
		}
	}
	if strings.TrimSpace(req.Currency) == "" {
		s := middleware.SessionFrom(r.Context())
		req.Currency = s.Currency.GetPreferredCurrency(r.Context(), middleware.ClientIP(r))
	}
	return req, true
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func cartSubtotal(req models.CartRequest) float64 {
	if req.Subtotal != nil {
		return *req.Subtotal
	}
	return models.Subtotal(req.CartItems)
}
