package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	h := Handler(time.Second,
		SubjectPinger("postgres", func(ctx context.Context) error { return nil }),
	)

	r, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"dev","commit":"undefined","meta":{"postgres":null}}`, w.Body.String())
}

func TestHandler_Failure(t *testing.T) {
	h := Handler(time.Second,
		SubjectPinger("postgres", func(ctx context.Context) error { return errors.New("connection refused") }),
	)

	r, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"version":"dev","commit":"undefined","meta":{"postgres":null},"errors":{"postgres":"connection refused"}}`, w.Body.String())
}
