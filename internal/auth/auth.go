// Package auth decides whether an inbound request may invoke a workflow,
// based on the auth policy the workflow declares. The evaluation is pure:
// no I/O, no state, no clock.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hookflow/pkg/models"
)

// APIKeyHeader and APIKeyQueryParam are the two places an API-key credential
// may be supplied; the header wins when both are present.
const (
	APIKeyHeader     = "x-api-key"
	APIKeyQueryParam = "apiKey"

	bearerPrefix = "Bearer "
)

// Denial reasons. All of them map to a 401 at the HTTP boundary.
var (
	ErrMissingAPIKey = errors.New("missing API key")
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrMissingBearer = errors.New("missing Authorization header")
	ErrInvalidBearer = errors.New("invalid bearer token")
)

// Credentials is the credential material extracted from a request.
type Credentials struct {
	// APIKey is the candidate API key, from header or query.
	APIKey string
	// Authorization is the raw Authorization header value.
	Authorization string
}

// FromRequest extracts credential material from an HTTP request. The API key
// is read from the x-api-key header first and the apiKey query parameter
// second.
func FromRequest(r *http.Request) Credentials {
	apiKey := r.Header.Get(APIKeyHeader)
	if apiKey == "" {
		apiKey = r.URL.Query().Get(APIKeyQueryParam)
	}
	return Credentials{
		APIKey:        apiKey,
		Authorization: r.Header.Get("Authorization"),
	}
}

// Evaluate applies a workflow's auth policy to the supplied credentials.
// A nil return means allow; otherwise the error carries the denial reason.
func Evaluate(policy models.AuthPolicy, creds Credentials) error {
	switch policy.Kind {
	case models.AuthNone, "":
		return nil

	case models.AuthAPIKey:
		if creds.APIKey == "" {
			return ErrMissingAPIKey
		}
		if subtle.ConstantTimeCompare([]byte(creds.APIKey), []byte(policy.Key)) != 1 {
			return ErrInvalidAPIKey
		}
		return nil

	case models.AuthBearer:
		if creds.Authorization == "" {
			return ErrMissingBearer
		}
		if !strings.HasPrefix(creds.Authorization, bearerPrefix) {
			return ErrInvalidBearer
		}
		candidate := strings.TrimPrefix(creds.Authorization, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(policy.Token)) != 1 {
			return ErrInvalidBearer
		}
		return nil

	default:
		return fmt.Errorf("unknown auth policy %q", policy.Kind)
	}
}
