package handlers

import (
	"net/http"

	"github.com/shopverse/storefront/internal/metrics"
	"github.com/shopverse/storefront/internal/models"
	"github.com/shopverse/storefront/internal/promo"
	"github.com/shopverse/storefront/internal/utils/response"
)

type PromoHandler struct {
	validator *promo.Validator
}

func NewPromoHandler(validator *promo.Validator) *PromoHandler {
	return &PromoHandler{validator: validator}
}

// Validate answers "is this code worth showing as applied". The response is
// the bare validation shape, not the API envelope, because the storefront
// polls it on every promo-field edit and treats any non-valid answer the
// same way.
func (h *PromoHandler) Validate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.validator.Enabled() {
			response.WriteJson(w, http.StatusBadRequest, models.PromoValidationResponse{
				Valid: false,
				Error: "Coupons are not enabled",
			})

			return
		}

		code := r.URL.Query().Get("code")
		if len(promo.Normalize(code)) < promo.MinCodeLength {
			response.WriteJson(w, http.StatusOK, models.PromoValidationResponse{Valid: false})

			return
		}

		result := h.validator.Validate(r.Context(), code)
		metrics.RecordPromoValidation(result.Valid)

		response.WriteJson(w, http.StatusOK, models.PromoValidationResponse{
			Valid:        result.Valid,
			Discount:     result.Amount,
			DiscountType: string(result.Kind),
		})
	}
}
