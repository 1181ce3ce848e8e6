package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedSentinelStillMatches(t *testing.T) {
	sentinel := NotFound("Puppy not found")
	err := fmt.Errorf("get puppy: %w", Wrap(sentinel, errors.New("sql: no rows")))

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.False(t, errors.Is(err, NotFound("User not found")))
}

func TestKindOf_UnknownErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("driver exploded")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindRateLimited:  http.StatusTooManyRequests,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind)
	}
}
