// Package bind decodes an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shashiranjanraj/fooddash/config"
)

const defaultMaxBodyBytes = 1 << 20 // 1 MB

// maxBodyBytes returns the configured request body size limit.
func maxBodyBytes() int64 {
	n := config.Int("MAX_BODY_BYTES", defaultMaxBodyBytes)
	if n <= 0 {
		return defaultMaxBodyBytes
	}
	return int64(n)
}

// JSON decodes r.Body into dest. The body is capped at MAX_BODY_BYTES.
// An empty body decodes as an empty object so validation, not parsing,
// reports the missing fields. Anything but whitespace after the first
// value is rejected.
func JSON(r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON: unexpected data after the top-level value")
	}
	return nil
}
