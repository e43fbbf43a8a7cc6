package handlers

import (
	"net/http"
	"strconv"

	"github.com/shopverse/storefront/internal/models"
	service "github.com/shopverse/storefront/internal/services"
	"github.com/shopverse/storefront/internal/utils/response"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts serves the browsing catalog: active products only, paginated,
// optionally filtered by a case-insensitive name search.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		filter := models.ProductFilter{Search: r.URL.Query().Get("search")}

		result, err := h.productService.ListActive(r.Context(), filter, page, size)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
