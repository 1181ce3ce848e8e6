package orders

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"pick-your-pup/internal/middleware"
	"pick-your-pup/internal/platform/httpjson"
	"pick-your-pup/internal/platform/metrics"
)

// RegisterRoutes monta /orders (autenticado).
func RegisterRoutes(r chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler, m *metrics.Metrics) {
	r.Route("/orders", func(or chi.Router) {
		or.Use(requireAuth)

		or.Post("/", createOrderHandler(svc, m))
		or.Get("/", listOrdersHandler(svc))
	})
}

type lineRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type createOrderRequest struct {
	Type        string          `json:"type"`
	PuppyID     int64           `json:"puppy_id"`
	Items       []lineRequest   `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// @Summary Create order
// @Description adoption: puppy_id + total_amount. purchase: items + total_amount (vacía el carrito).
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body createOrderRequest true "Order"
// @Success 201 {object} createOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders [post]
func createOrderHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createOrderRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		in := CreateInput{
			Type:        Type(req.Type),
			PuppyID:     req.PuppyID,
			TotalAmount: req.TotalAmount,
		}
		for _, l := range req.Items {
			in.Items = append(in.Items, Line{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price})
		}

		o, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		m.OrderCreated(string(o.Type))

		httpjson.Write(w, http.StatusCreated, createOrderResponse{
			Message: "Order created successfully",
			OrderID: o.ID,
		})
	}
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Listed
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func listOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		out, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}
