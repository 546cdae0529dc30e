package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekly-savings/backend/internal/router"
	"github.com/weekly-savings/backend/internal/tracker"
)

// Request sends a request to a new router and returns the recorded response.
//
// body can be a string, a *bytes.Buffer or any value that is encoded as
// JSON. The tracker handling the request uses Clock as its clock.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	r, teardown := newRouter(t)
	defer teardown()

	req, err := http.NewRequest(method, reqURL, encode(t, body))
	require.Nil(t, err, "building request")

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

func newRouter(t *testing.T) (*gin.Engine, func()) {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	if err != nil {
		teardown()
		require.FailNow(t, "router could not be initialized", err)
	}

	router.AttachRoutes(r.Group("/"), tracker.New(tracker.WithClock(Clock), tracker.WithLocation(time.UTC)))
	return r, teardown
}

func encode(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case string:
		return bytes.NewBufferString(b)
	case *bytes.Buffer:
		return b
	}

	encoded, err := json.Marshal(body)
	require.Nil(t, err, "request body could not be encoded")

	return bytes.NewBuffer(encoded)
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
