package testkit

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

// AssertStatusCode checks the response code and prints the body on mismatch.
func AssertStatusCode(t *testing.T, step string, want, got int, body []byte) bool {
	t.Helper()
	return assert.Equal(t, want, got,
		"[%s] HTTP status code mismatch\nbody: %s", step, body)
}

// AssertJSONBody deep-compares the actual body against expected after
// normalising both through JSON unmarshal, so key order and whitespace
// never matter.
func AssertJSONBody(t *testing.T, step string, expected, actual []byte) {
	t.Helper()

	expVal, actVal, ok := decodePair(t, step, expected, actual)
	if !ok {
		return
	}
	assert.Equal(t, expVal, actVal, "[%s] response body mismatch", step)
}

// AssertJSONSubset passes when every key present in expected appears in
// actual with an equal value. Arrays must have the same length and match
// element by element.
func AssertJSONSubset(t *testing.T, step string, expected, actual []byte) {
	t.Helper()

	expVal, actVal, ok := decodePair(t, step, expected, actual)
	if !ok {
		return
	}
	for _, d := range subsetDiff("", expVal, actVal) {
		t.Errorf("[%s] %s\nbody: %s", step, d, actual)
	}
}

// AssertLength checks the length of a top-level JSON array.
func AssertLength(t *testing.T, step string, want int, body []byte) {
	t.Helper()

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		t.Errorf("[%s] expected a JSON array, got %s", step, body)
		return
	}
	assert.Equal(t, want, len(root.Array()), "[%s] array length mismatch", step)
}

// AssertPath compares the value at a gjson path with an expected JSON value.
func AssertPath(t *testing.T, step, path string, expected, body []byte) {
	t.Helper()

	res := gjson.GetBytes(body, path)
	if !res.Exists() {
		t.Errorf("[%s] path %q not found in %s", step, path, body)
		return
	}
	AssertJSONBody(t, fmt.Sprintf("%s: %s", step, path), expected, []byte(res.Raw))
}

func decodePair(t *testing.T, step string, expected, actual []byte) (any, any, bool) {
	t.Helper()

	var expVal, actVal any
	if err := json.Unmarshal(expected, &expVal); err != nil {
		t.Errorf("[%s] expected value is not valid JSON: %v", step, err)
		return nil, nil, false
	}
	if err := json.Unmarshal(actual, &actVal); err != nil {
		t.Errorf("[%s] actual response is not valid JSON: %v\nbody: %s", step, err, actual)
		return nil, nil, false
	}
	return expVal, actVal, true
}

func subsetDiff(path string, expected, actual any) []string {
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		if !ok {
			return []string{fmt.Sprintf("%s: expected object, got %T", keyPath(path), actual)}
		}
		var diffs []string
		for k, ev := range exp {
			av, exists := act[k]
			if !exists {
				diffs = append(diffs, fmt.Sprintf("%s.%s: missing", keyPath(path), k))
				continue
			}
			diffs = append(diffs, subsetDiff(path+"."+k, ev, av)...)
		}
		return diffs
	case []any:
		act, ok := actual.([]any)
		if !ok {
			return []string{fmt.Sprintf("%s: expected array, got %T", keyPath(path), actual)}
		}
		if len(exp) != len(act) {
			return []string{fmt.Sprintf("%s: array length expected=%d actual=%d", keyPath(path), len(exp), len(act))}
		}
		var diffs []string
		for i := range exp {
			diffs = append(diffs, subsetDiff(fmt.Sprintf("%s[%d]", path, i), exp[i], act[i])...)
		}
		return diffs
	default:
		if !assert.ObjectsAreEqual(expected, actual) {
			return []string{fmt.Sprintf("%s: expected %v, got %v", keyPath(path), expected, actual)}
		}
		return nil
	}
}

func keyPath(path string) string {
	if path == "" {
		return "root"
	}
	if path[0] == '.' {
		return path[1:]
	}
	return path
}
