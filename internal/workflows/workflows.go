// Package workflows holds the built-in workflow definitions registered by
// the server binary. They double as usage examples for the framework.
package workflows

import (
	"context"
	"fmt"

	"hookflow/internal/schema"
	"hookflow/pkg/models"
)

// Logger defines the logging interface compatible with the application logger.
type Logger interface {
	Info(msg string, args ...any)
}

// Echo returns a workflow that responds with whatever payload it received.
func Echo() *models.Workflow {
	return &models.Workflow{
		Config: models.Config{
			ID:          "echo",
			Name:        "Echo",
			Description: "Returns the inbound payload unchanged.",
			Auth:        models.NoAuth(),
		},
		Execute: func(ctx context.Context, payload any, ec *models.ExecutionContext) (any, error) {
			return payload, nil
		},
	}
}

// Greet returns a schema-validated workflow greeting the caller by name.
func Greet() *models.Workflow {
	return &models.Workflow{
		Config: models.Config{
			ID:          "greet",
			Name:        "Greet",
			Description: "Greets the caller; payload must carry a non-empty name.",
			Auth:        models.NoAuth(),
		},
		Schema: schema.MustFromMap(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"name"},
		}),
		Execute: func(ctx context.Context, payload any, ec *models.ExecutionContext) (any, error) {
			body, ok := payload.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("unexpected payload type %T", payload)
			}
			return map[string]any{"greeting": fmt.Sprintf("Hello, %v!", body["name"])}, nil
		},
	}
}

// Heartbeat returns a scheduled workflow that logs each timer firing.
func Heartbeat(logger Logger) *models.Workflow {
	return &models.Workflow{
		Config: models.Config{
			ID:          "heartbeat",
			Name:        "Heartbeat",
			Description: "Logs a liveness line once a minute.",
			Auth:        models.NoAuth(),
			Schedule:    "* * * * *",
		},
		Execute: func(ctx context.Context, payload any, ec *models.ExecutionContext) (any, error) {
			logger.Info("heartbeat (invocation %s): %v", ec.InvocationID, payload)
			return nil, nil
		},
	}
}
