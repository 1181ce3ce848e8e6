package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pick-your-pup/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/search", searchHandler(svc))
}

// @Summary Search puppies and products
// @Tags search
// @Produce json
// @Param q query string true "Texto (mínimo 2 caracteres)"
// @Success 200 {array} Result
// @Router /search [get]
func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}
