package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pick-your-pup/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/puppies", func(pr chi.Router) {
		pr.Get("/", listPuppiesHandler(svc))
		pr.Get("/{id}", getPuppyHandler(svc))
	})

	r.Get("/products", listProductsHandler(svc))
}

// @Summary List puppies (newest first)
// @Tags catalog
// @Produce json
// @Success 200 {array} Puppy
// @Router /puppies [get]
func listPuppiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPuppies(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

// @Summary Get a puppy
// @Tags catalog
// @Produce json
// @Param id path int true "Puppy ID"
// @Success 200 {object} Puppy
// @Failure 404 {object} map[string]string
// @Router /puppies/{id} [get]
func getPuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Un id no numérico no puede matchear ninguna fila => 404.
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httpjson.WriteError(w, r, ErrPuppyNotFound)
			return
		}

		p, err := svc.GetPuppy(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, p)
	}
}

// @Summary List in-stock products
// @Tags catalog
// @Produce json
// @Param category query string false "food | accessories"
// @Param type query string false "Product subtype (dry, treats, collars...)"
// @Success 200 {array} Product
// @Router /products [get]
func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.ListProducts(r.Context(), ProductFilter{
			Category: Category(q.Get("category")),
			Type:     q.Get("type"),
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}
