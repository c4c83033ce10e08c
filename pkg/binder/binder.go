// Package binder glues the schema validation engine to HTTP handlers: it
// decodes a JSON request body into a generic map and runs it through a
// schema validator, handing the handler the sanitized payload or a
// distinguishable error.
package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sievekit/sieve/pkg/schema"
)

// DefaultMaxJSONSize caps how much of a request body the binder reads
// before rejecting it.
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrBodyTooLarge         = errors.New("request body too large")
)

// BindJSON returns a binder that decodes the request body as a JSON object
// and validates it against v's schema registry. Every request runs on its
// own clone of the validator, so one binder serves concurrent requests.
//
// The sanitized payload is returned on success. A body failing validation
// returns the schema.Errors list; a broken schema surfaces as a
// *schema.DefinitionError, which a handler should treat as a server-side
// fault rather than a client error.
func BindJSON(v *schema.Validator) func(r *http.Request) (map[string]any, error) {
	return func(r *http.Request) (map[string]any, error) {
		if err := requireJSON(r); err != nil {
			return nil, err
		}

		// Read one byte past the cap so an at-the-limit body is
		// distinguishable from an oversized one.
		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: reading body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber()

		var payload map[string]any
		if err := decoder.Decode(&payload); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		// Reject trailing garbage after the object.
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		out, err := v.Clone().Validate(normalizeNumbers(payload).(map[string]any))
		if err != nil {
			return nil, err
		}

		sanitized, ok := out.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidJSON)
		}
		return sanitized, nil
	}
}

func requireJSON(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	return nil
}

// normalizeNumbers rewrites json.Number leaves into int64 or float64 so
// numeric rules see plain Go numbers.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = normalizeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return value
	}
}
