package models

import (
	"net/http"
	"net/url"
)

// ExecutionContext is the read-only bundle of identity and request metadata
// handed to a workflow body. It is allocated fresh per invocation and never
// shared across invocations.
type ExecutionContext struct {
	// InvocationID uniquely identifies one invocation, for log correlation.
	InvocationID string `json:"invocation_id"`
	// WorkflowID is the resolved registry key.
	WorkflowID string `json:"workflow_id"`
	// Name is the workflow display name.
	Name string `json:"name"`
	// Params maps route-pattern parameters to values. Empty for scheduled
	// invocations.
	Params map[string]string `json:"params"`
	// Query holds the request query string. Empty for scheduled invocations.
	Query url.Values `json:"query"`
	// Headers holds the request headers in the transport's canonical form;
	// lookups through Headers.Get are case-insensitive. Empty for scheduled
	// invocations.
	Headers http.Header `json:"headers"`
}
