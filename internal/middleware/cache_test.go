package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached(t *testing.T) {
	var calls int
	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"posts":1}`)) // nolint:errcheck
	})

	r, err := http.NewRequest(http.MethodGet, "/v1/stats", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, `{"posts":1}`, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, `{"posts":1}`, w.Body.String())

	assert.Equal(t, 1, calls)
}

func TestCached_SkipsErrors(t *testing.T) {
	var calls int
	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	r, err := http.NewRequest(http.MethodGet, "/v1/stats", nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}

	assert.Equal(t, 2, calls)
}
