package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/shopverse/storefront/internal/errors"
	"github.com/shopverse/storefront/internal/models"
	service "github.com/shopverse/storefront/internal/services"
	"github.com/shopverse/storefront/internal/utils"
	"github.com/shopverse/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		result, err := h.checkoutService.Checkout(r.Context(), &req)
		if err != nil {
			slog.Warn("Checkout rejected", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		slog.Info("Checkout session created",
			slog.Int64("total", result.Total),
			slog.Int("droppedLines", len(result.DroppedProductIDs)))
		response.Success(w, http.StatusOK, result)
	}
}
