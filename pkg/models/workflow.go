package models

import "context"

// AuthKind selects the authentication policy variant for a workflow.
type AuthKind string

const (
	AuthNone   AuthKind = "none"
	AuthAPIKey AuthKind = "apiKey"
	AuthBearer AuthKind = "bearer"
)

// AuthPolicy is the tagged auth variant declared by a workflow. Exactly one
// variant is active; Key is set for apiKey and Token for bearer. Credential
// material is never serialized.
type AuthPolicy struct {
	Kind  AuthKind `json:"kind"`
	Key   string   `json:"-"`
	Token string   `json:"-"`
}

// NoAuth returns the policy that admits every caller.
func NoAuth() AuthPolicy {
	return AuthPolicy{Kind: AuthNone}
}

// APIKeyAuth returns a policy admitting callers that present the given key.
func APIKeyAuth(key string) AuthPolicy {
	return AuthPolicy{Kind: AuthAPIKey, Key: key}
}

// BearerAuth returns a policy admitting callers that present the given bearer token.
func BearerAuth(token string) AuthPolicy {
	return AuthPolicy{Kind: AuthBearer, Token: token}
}

// Config is the declarative part of a workflow definition. It is immutable
// after registration.
type Config struct {
	// ID is the unique registry key and the webhook path segment.
	ID string `json:"id"`
	// Name is a display string; defaults to ID when empty.
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Auth        AuthPolicy `json:"auth"`
	// Schedule is an optional cron expression; non-empty means the workflow
	// is also invoked on a timer.
	Schedule string `json:"schedule,omitempty"`
}

// HandlerFunc is the workflow body. It receives the (possibly
// schema-normalized) payload and a fresh execution context, and returns the
// value surfaced in the success envelope.
type HandlerFunc func(ctx context.Context, payload any, ec *ExecutionContext) (any, error)

// Workflow is a loaded workflow definition: declarative config, an optional
// payload schema, and the executable body.
type Workflow struct {
	Config  Config
	Schema  Schema
	Execute HandlerFunc
}

// DisplayName returns Config.Name, falling back to the id.
func (w *Workflow) DisplayName() string {
	if w.Config.Name != "" {
		return w.Config.Name
	}
	return w.Config.ID
}
