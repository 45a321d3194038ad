package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var id string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = RequestID(r.Context())
	}))

	r, err := http.NewRequest(http.MethodGet, "/v1/posts", nil)
	require.NoError(t, err)

	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.NotEmpty(t, id)
}

func TestLoggerMiddleware_RequestID(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	lvl := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(lvl)

	// the request id must be assigned before the logger reads it,
	// matching the router's middleware order
	h := RequestIDMiddleware(LoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	r, err := http.NewRequest(http.MethodGet, "/v1/posts", nil)
	require.NoError(t, err)

	h.ServeHTTP(httptest.NewRecorder(), r)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.NotEmpty(t, entry.Data["request_id"])
}

func TestAuthMiddleware(t *testing.T) {
	var caller string
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller = CallerID(r.Context())
	}))

	r, err := http.NewRequest(http.MethodGet, "/v1/posts", nil)
	require.NoError(t, err)

	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Empty(t, caller)

	r.Header.Set(CallerHeader, "alice")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "alice", caller)
}
