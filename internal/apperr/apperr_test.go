package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrDuplicateName, http.StatusConflict},
		{ErrDuplicateIdentity, http.StatusConflict},
		{ErrImmutableRole, http.StatusConflict},
		{ErrMalformedIdent, http.StatusBadRequest},
		{errors.New("something unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), "error %v", tc.err)
	}
}

func TestStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, Status(wrapped))
}

func TestMessageHidesInternalDetail(t *testing.T) {
	assert.Equal(t, "internal server error", Message(errors.New("pq: connection refused")))
	assert.Equal(t, ErrInvalidCredentials.Error(), Message(ErrInvalidCredentials))
}
