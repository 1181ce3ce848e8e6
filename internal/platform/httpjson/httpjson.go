package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"pick-your-pup/internal/platform/apperr"
	"pick-your-pup/internal/platform/logger"
)

// MaxBodyBytes limita el body de los requests JSON.
const MaxBodyBytes = 1 << 20

func init() {
	// Precios y totales salen como números JSON (45.99), no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message responde {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, messageBody{Message: msg})
}

// Error responde {"error": msg} con el status indicado.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// WriteError traduce err a status + mensaje público.
// Errores que no son *apperr.Error (o son Internal) se loguean y se responden como 500 genérico.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := apperr.As(err)
	if !ok || e.Kind == apperr.KindInternal {
		logger.FromContext(r.Context(), nil).Error("request failed", map[string]any{
			"err": err,
		})
		Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	Error(w, apperr.HTTPStatus(e.Kind), e.Message)
}

// Decode lee el body JSON en dst. Body vacío se acepta (dst queda en cero).
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Wrap(errInvalidJSON, err)
	}
	return nil
}

var errInvalidJSON = apperr.Validation("Invalid JSON body")
