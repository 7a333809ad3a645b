// Package testkit provides a JSON-scenario-driven REST API testing framework.
//
// A scenario file describes an ordered list of HTTP steps fired against
// one handler. Values returned by earlier steps can be captured with a
// gjson path and reused later as {{name}}:
//
//	{
//	  "name": "product embeds its category",
//	  "steps": [
//	    {"requestMethod": "POST", "requestUrl": "/api/categories",
//	     "requestBody": {"name": "Burgers", "description": "Grilled"},
//	     "expectedCode": 201, "capture": {"categoryId": "_id"}},
//	    {"requestMethod": "GET", "requestUrl": "/api/products",
//	     "expectedCode": 200, "expectLength": 0}
//	  ]
//	}
//
// A file without "steps" is a single-step scenario whose request fields
// sit at the top level.
//
// Scenario files live next to the *_test.go files:
//
//	testdata/
//	  create_user.json           ← scenario
//	  create_user_req.json       ← request body (requestFileName)
//	  create_user_res.json       ← expected response body (responseFileName)
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    testkit.RunDir(t, newHandler, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ─── Schema ───────────────────────────────────────────────────────────────────

// Scenario is a named sequence of steps sharing captured variables.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Single-step form.
	Step

	Steps []Step `json:"steps"`

	// resolved at load time, not read from JSON
	dir string
}

// Step is one request and its assertions.
type Step struct {
	Name string `json:"name"`

	// Request
	RequestMethod   string            `json:"requestMethod"`   // GET, POST, PUT, DELETE
	RequestURL      string            `json:"requestUrl"`      // e.g. /api/users/{{userId}}
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline JSON body
	RequestFileName string            `json:"requestFileName"` // body file relative to the scenario dir
	Headers         map[string]string `json:"headers"`

	// Response assertions
	ExpectedCode     int                        `json:"expectedCode"`
	ResponseFileName string                     `json:"responseFileName"` // exact JSON body
	Expect           json.RawMessage            `json:"expect"`           // JSON subset of the body
	ExpectLength     *int                       `json:"expectLength"`     // length of a top-level array
	Assert           map[string]json.RawMessage `json:"assert"`           // gjson path → expected JSON value

	// Capture stores gjson path results under a variable name.
	Capture map[string]string `json:"capture"`
}

// ─── Loading ──────────────────────────────────────────────────────────────────

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if len(s.Steps) == 0 && s.RequestURL != "" {
		s.Steps = []Step{s.Step}
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		if step.RequestURL == "" {
			return fmt.Errorf("steps[%d].requestUrl is required", i)
		}
		if step.ExpectedCode == 0 {
			return fmt.Errorf("steps[%d].expectedCode is required", i)
		}
		if step.RequestMethod == "" {
			step.RequestMethod = "GET"
		}
		step.RequestMethod = strings.ToUpper(step.RequestMethod)
		if step.Name == "" {
			step.Name = fmt.Sprintf("%02d %s %s", i+1, step.RequestMethod, step.RequestURL)
		}
	}
	return nil
}

// resolve returns name relative to the scenario directory, or "" when unset.
func (s *Scenario) resolve(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// LoadAllFromDir loads every scenario file in dir. Files that fail to parse
// are collected as errors.
func LoadAllFromDir(dir string) ([]*Scenario, []error) {
	entries, err := scenarioFiles(dir)
	if err != nil {
		return nil, []error{err}
	}

	var (
		scenarios []*Scenario
		errs      []error
	)
	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, errs
}

// scenarioFiles lists *.json files in dir, skipping *_req.json and
// *_res.json body fixtures.
func scenarioFiles(dir string) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("testkit: glob %q: %w", dir, err)
	}

	var out []string
	for _, p := range entries {
		base := filepath.Base(p)
		if strings.HasSuffix(base, "_req.json") || strings.HasSuffix(base, "_res.json") {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("testkit: no scenario files found in %q", dir)
	}
	return out, nil
}
