package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pick-your-pup/internal/platform/httpjson"
	"pick-your-pup/internal/platform/metrics"
)

const ackMessage = "Message sent successfully! We will get back to you within 24 hours."

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics) {
	r.Post("/contact", submitHandler(svc, m))
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// @Summary Send contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param input body submitRequest true "Message"
// @Success 200 {object} map[string]string
// @Router /contact [post]
func submitHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		if _, err := svc.Submit(r.Context(), Input(req)); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		m.ContactMessage()
		httpjson.Message(w, http.StatusOK, ackMessage)
	}
}
