package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// ─── MockTransport ────────────────────────────────────────────────────────────

// MockTransport implements http.RoundTripper. It matches outgoing requests
// against a list of MockSteps and returns synthetic responses instead of
// making real network calls.
//
// Install it on a pkg/http client:
//
//	mt := testkit.NewMockTransport(testkit.MockStep{
//	    Method: "DELETE", MatchURL: "http://api.local/api/users/",
//	    StatusCode: 404, Body: json.RawMessage(`{"message":"User not found"}`),
//	})
//	c := http.New("http://api.local/api", http.WithTransport(mt))
//	// ... run test ...
//	assert.Empty(t, mt.AssertAllCalled())
type MockTransport struct {
	mu       sync.Mutex
	steps    []mockEntry
	requests []RecordedRequest
}

// MockStep describes one intercepted outgoing call.
type MockStep struct {
	// Method matches the HTTP method; "" matches any.
	Method string `json:"method"`

	// MatchURL is a prefix of the outgoing URL; "" matches any.
	MatchURL string `json:"matchUrl"`

	// StatusCode defaults to 200.
	StatusCode int `json:"statusCode"`

	// Body is returned verbatim as the JSON response body.
	Body json.RawMessage `json:"body"`
}

// RecordedRequest is an outgoing request seen by the transport.
type RecordedRequest struct {
	Method string
	URL    string
	Body   []byte
}

type mockEntry struct {
	step      MockStep
	callCount int
}

// NewMockTransport builds a MockTransport. Steps are matched in order;
// the first matching step answers.
func NewMockTransport(steps ...MockStep) *MockTransport {
	mt := &MockTransport{}
	for _, s := range steps {
		mt.steps = append(mt.steps, mockEntry{step: s})
	}
	return mt
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
// An unmatched request is an error.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	mt.mu.Lock()
	defer mt.mu.Unlock()

	mt.requests = append(mt.requests, RecordedRequest{Method: req.Method, URL: req.URL.String(), Body: body})

	for i := range mt.steps {
		entry := &mt.steps[i]
		if entry.step.Method != "" && !strings.EqualFold(entry.step.Method, req.Method) {
			continue
		}
		if !urlMatches(req.URL.String(), entry.step.MatchURL) {
			continue
		}

		entry.callCount++
		return buildHTTPResponse(req, entry.step), nil
	}

	return nil, fmt.Errorf("testkit: unexpected outgoing HTTP call %s %s: no matching mock step", req.Method, req.URL)
}

// Requests returns every request seen so far, in order.
func (mt *MockTransport) Requests() []RecordedRequest {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return append([]RecordedRequest(nil), mt.requests...)
}

// AssertAllCalled returns one error per step that was never triggered.
func (mt *MockTransport) AssertAllCalled() []error {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var errs []error
	for _, e := range mt.steps {
		if e.callCount == 0 {
			errs = append(errs, fmt.Errorf(
				"testkit: mock step %s %q was never called",
				e.step.Method, e.step.MatchURL,
			))
		}
	}
	return errs
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func urlMatches(candidate, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.HasPrefix(candidate, pattern)
}

func buildHTTPResponse(req *http.Request, step MockStep) *http.Response {
	code := step.StatusCode
	if code == 0 {
		code = http.StatusOK
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(step.Body)),
		Request:    req,
	}
}
