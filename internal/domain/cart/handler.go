package cart

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pick-your-pup/internal/middleware"
	"pick-your-pup/internal/platform/httpjson"
)

// RegisterRoutes monta /cart; todas las rutas requieren auth.
func RegisterRoutes(r chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler) {
	r.Route("/cart", func(cr chi.Router) {
		cr.Use(requireAuth)

		cr.Get("/", getCartHandler(svc))
		cr.Post("/", addItemHandler(svc))
		cr.Delete("/", clearCartHandler(svc))
		cr.Delete("/{productID}", removeItemHandler(svc))
	})
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	// nil => 1
	Quantity *int `json:"quantity"`
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Line
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cart [get]
func getCartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		lines, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, lines)
	}
}

// @Summary Add item to cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body addItemRequest true "Item"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart [post]
func addItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req addItemRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		qty := 1
		if req.Quantity != nil {
			qty = *req.Quantity
		}

		if err := svc.AddItem(r.Context(), claims.UserID, req.ProductID, qty); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Message(w, http.StatusOK, "Item added to cart")
	}
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productID path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /cart/{productID} [delete]
func removeItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil || productID <= 0 {
			httpjson.WriteError(w, r, ErrInvalidProductID)
			return
		}

		if err := svc.RemoveItem(r.Context(), claims.UserID, productID); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Message(w, http.StatusOK, "Item removed from cart")
	}
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /cart [delete]
func clearCartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		if err := svc.Clear(r.Context(), claims.UserID); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Message(w, http.StatusOK, "Cart cleared")
	}
}
