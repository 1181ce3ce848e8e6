package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pick-your-pup/internal/platform/apperr"
)

func TestWriteError_MapsKindsAndHidesInternals(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperr.Validation("name is required"), http.StatusBadRequest, "name is required"},
		{"not found", apperr.NotFound("Puppy not found"), http.StatusNotFound, "Puppy not found"},
		{"conflict", apperr.Conflict("User already exists"), http.StatusConflict, "User already exists"},
		{"plain", errors.New("pq: relation \"users\" does not exist"), http.StatusInternalServerError, "Server error"},
		{"internal", apperr.Internal(errors.New("tx failed")), http.StatusInternalServerError, "Server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(rec, req, tc.err)

			require.Equal(t, tc.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestDecode(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Luna"}`))
	require.NoError(t, Decode(rec, req, &dst))
	assert.Equal(t, "Luna", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, Decode(rec, req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := Decode(rec, req, &dst)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
