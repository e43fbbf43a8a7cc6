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

// SessionHeader carries the anonymous session identifier minted by the
// storefront client. Carts are scoped to it; there are no user accounts.
const SessionHeader = "X-Session-ID"

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		response.Error(w, appErrors.ValidationError("Session ID is required"))

		return "", false
	}

	return id, true
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart := h.cartService.GetCart(r.Context(), session)

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		cart := h.cartService.AddItem(r.Context(), session, &req)

		slog.Info("Cart item added",
			slog.String("productId", req.ProductID),
			slog.Int("itemCount", cart.ItemCount))
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		cart := h.cartService.UpdateQuantity(r.Context(), session, &req)

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		productID := r.PathValue("productId")
		if productID == "" {
			response.Error(w, appErrors.ValidationError("Product ID is required"))
			return
		}

		cart := h.cartService.RemoveItem(r.Context(), session, productID)

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) Clear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		h.cartService.Clear(r.Context(), session)

		response.Success(w, http.StatusOK, models.CartResponse{})
	}
}

func (h *CartHandler) Email() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		email := h.cartService.Email(r.Context(), session)

		response.Success(w, http.StatusOK, map[string]string{"email": email})
	}
}

func (h *CartHandler) SaveEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SaveEmailRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		h.cartService.SaveEmail(r.Context(), session, req.Email)

		response.Success(w, http.StatusOK, map[string]string{"email": req.Email})
	}
}
