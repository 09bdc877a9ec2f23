package dispatch

import "hookflow/pkg/models"

// successEnvelope is the 200 response body for a completed invocation.
type successEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorEnvelope is the response body for every failed invocation. Details is
// populated only for schema validation failures.
type errorEnvelope struct {
	Error   string                   `json:"error"`
	Details []models.ValidationIssue `json:"details,omitempty"`
}

// genericFailure is the shared client-visible message for body decode
// failures and uncaught workflow faults. The two are deliberately not
// distinguished in the response.
const genericFailure = "Invalid JSON payload or internal error"

// validationFailed is the error string for schema rejections.
const validationFailed = "Validation Failed"
