//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RequestOption func(*requestOptions)

type requestOptions struct {
	headers     map[string]string
	raw         []byte
	contentType string
}

func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// WithRawBody sends body verbatim instead of JSON-encoding the body argument.
func WithRawBody(contentType, body string) RequestOption {
	return func(o *requestOptions) {
		o.contentType = contentType
		o.raw = []byte(body)
	}
}

// PerformRequest JSON-encodes a non-nil body and serves the request through router.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	o := requestOptions{headers: map[string]string{}}
	for _, opt := range opts {
		opt(&o)
	}

	reqBody := bytes.NewBuffer(o.raw)
	if o.raw == nil && body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
		o.contentType = "application/json"
	}

	req := httptest.NewRequest(method, path, reqBody)
	if o.contentType != "" {
		req.Header.Set("Content-Type", o.contentType)
	}
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
