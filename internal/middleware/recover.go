package middleware

import (
	"net/http"
	"runtime/debug"

	"pick-your-pup/internal/platform/httpjson"
	"pick-your-pup/internal/platform/logger"
)

// Recover convierte panics en 500 JSON genérico; el stack sólo va al log.
func Recover(fallback logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context(), fallback).Error("panic recovered", map[string]any{
					"panic": rec,
					"stack": string(debug.Stack()),
				})
				httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
