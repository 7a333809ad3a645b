package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/tidwall/gjson"
)

// ─── Public API ───────────────────────────────────────────────────────────────

// Run executes the scenario in path against a handler from newHandler.
func Run(t *testing.T, newHandler func() http.Handler, scenarioPath string) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		RunScenario(t, newHandler(), s)
	})
}

// RunDir runs every scenario file in dir as a subtest. Each scenario gets
// a fresh handler from newHandler so scenarios cannot see each other's data.
func RunDir(t *testing.T, newHandler func() http.Handler, dir string) {
	t.Helper()

	paths, err := scenarioFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			t.Errorf("testkit: load %q: %v", path, err)
			continue
		}

		t.Run(s.Name, func(t *testing.T) {
			RunScenario(t, newHandler(), s)
		})
	}
}

// RunScenario fires every step of s in order. A step whose status code is
// wrong stops the scenario, since later steps usually depend on it.
func RunScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()

	vars := Vars{}
	for _, step := range s.Steps {
		if !runStep(t, handler, s, step, vars) {
			return
		}
	}
}

// ─── Internal execution ───────────────────────────────────────────────────────

func runStep(t *testing.T, handler http.Handler, s *Scenario, step Step, vars Vars) bool {
	t.Helper()

	// ── 1. Build request body ─────────────────────────────────────────────

	var payload []byte
	switch {
	case len(step.RequestBody) > 0:
		payload = step.RequestBody
	case step.RequestFileName != "":
		data, err := os.ReadFile(s.resolve(step.RequestFileName))
		if err != nil {
			t.Fatalf("[%s] read request file %q: %v", step.Name, step.RequestFileName, err)
		}
		payload = data
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(vars.expandBytes(t, payload))
	}

	// ── 2. Fire the request ───────────────────────────────────────────────

	req := httptest.NewRequest(step.RequestMethod, vars.expand(t, step.RequestURL), reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range step.Headers {
		req.Header.Set(k, vars.expand(t, v))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	body := rec.Body.Bytes()

	// ── 3. Assert ─────────────────────────────────────────────────────────

	if !AssertStatusCode(t, step.Name, step.ExpectedCode, rec.Code, body) {
		return false
	}

	if p := s.resolve(step.ResponseFileName); p != "" {
		expected, err := os.ReadFile(p)
		if err != nil {
			t.Errorf("[%s] read response file %q: %v", step.Name, p, err)
		} else {
			AssertJSONBody(t, step.Name, vars.expandBytes(t, expected), body)
		}
	}
	if len(step.Expect) > 0 {
		AssertJSONSubset(t, step.Name, vars.expandBytes(t, step.Expect), body)
	}
	if step.ExpectLength != nil {
		AssertLength(t, step.Name, *step.ExpectLength, body)
	}
	for path, want := range step.Assert {
		AssertPath(t, step.Name, path, vars.expandBytes(t, want), body)
	}

	// ── 4. Capture ────────────────────────────────────────────────────────

	for name, path := range step.Capture {
		res := gjson.GetBytes(body, path)
		if !res.Exists() {
			t.Errorf("[%s] capture %q: path %q not found in %s", step.Name, name, path, body)
			continue
		}
		vars[name] = res.String()
	}
	return true
}

// ─── Variables ────────────────────────────────────────────────────────────────

// Vars holds values captured by earlier steps.
type Vars map[string]string

var placeholderRE = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

func (v Vars) expand(t *testing.T, s string) string {
	t.Helper()
	return placeholderRE.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholderRE.FindStringSubmatch(m)[1]
		val, ok := v[name]
		if !ok {
			t.Errorf("testkit: variable %q was never captured", name)
			return m
		}
		return val
	})
}

func (v Vars) expandBytes(t *testing.T, b []byte) []byte {
	t.Helper()
	return []byte(v.expand(t, string(b)))
}
