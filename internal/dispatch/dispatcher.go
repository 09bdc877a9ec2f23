// Package dispatch routes trigger events to workflow bodies. The HTTP path
// resolves, authenticates, decodes, and validates before invoking; the
// scheduled path invokes directly with a synthetic payload.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hookflow/internal/auth"
	"hookflow/internal/registry"
	"hookflow/pkg/models"
)

// Logger defines the logging interface compatible with the application logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Dispatcher resolves and invokes workflows for both trigger paths. It holds
// no mutable state beyond the read-only registry, so one instance serves all
// concurrent invocations.
type Dispatcher struct {
	registry *registry.Registry
	logger   Logger
}

// New creates a Dispatcher over a loaded registry.
func New(reg *registry.Registry, logger Logger) *Dispatcher {
	return &Dispatcher{registry: reg, logger: logger}
}

// Handle serves POST /:id. Each step is terminal on failure: unknown id,
// denied credentials, undecodable body, schema rejection. Decode errors and
// faults raised by the workflow body share one generic 400; the response does
// not distinguish them.
func (d *Dispatcher) Handle(c echo.Context) error {
	id := c.Param("id")

	wf, ok := d.registry.Lookup(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorEnvelope{
			Error: fmt.Sprintf("workflow %q not found", id),
		})
	}

	if err := auth.Evaluate(wf.Config.Auth, auth.FromRequest(c.Request())); err != nil {
		return c.JSON(http.StatusUnauthorized, errorEnvelope{
			Error: "Unauthorized: " + err.Error(),
		})
	}

	payload, err := decodeBody(c.Request().Body)
	if err != nil {
		d.logger.Error("workflow %q: body decode failed: %v", id, err)
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: genericFailure})
	}

	if wf.Schema != nil {
		result := wf.Schema.Validate(payload)
		if !result.Valid {
			// Expected, user-driven control flow; not an internal error.
			return c.JSON(http.StatusBadRequest, errorEnvelope{
				Error:   validationFailed,
				Details: result.Details,
			})
		}
		payload = result.Value
	}

	ec := BuildContext(wf, routeParams(c), c.QueryParams(), c.Request().Header)

	data, err := d.invoke(c.Request().Context(), wf, payload, ec)
	if err != nil {
		d.logger.Error("workflow %q: execution failed (invocation %s): %v", id, ec.InvocationID, err)
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: genericFailure})
	}

	return c.JSON(http.StatusOK, successEnvelope{
		Status:  "success",
		Message: fmt.Sprintf("workflow %q executed", id),
		Data:    data,
	})
}

// DispatchScheduled runs one timer firing of a workflow. Auth, decode, and
// validation are all skipped: the trigger is internal and the payload shape
// is fixed. Faults are logged and swallowed so one bad firing can never take
// down the scheduler or other workflows.
func (d *Dispatcher) DispatchScheduled(wf *models.Workflow) {
	payload := map[string]any{
		"source":    "cron",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	ec := BuildContext(wf, nil, nil, nil)

	d.logger.Debug("workflow %q: scheduled firing (invocation %s)", wf.Config.ID, ec.InvocationID)
	if _, err := d.invoke(context.Background(), wf, payload, ec); err != nil {
		d.logger.Error("workflow %q: scheduled execution failed (invocation %s): %v", wf.Config.ID, ec.InvocationID, err)
	}
}

// invoke calls the workflow body, converting a panic into an ordinary error
// so both trigger paths share one failure boundary.
func (d *Dispatcher) invoke(ctx context.Context, wf *models.Workflow, payload any, ec *models.ExecutionContext) (data any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("workflow panic: %v", r)
		}
	}()
	return wf.Execute(ctx, payload, ec)
}

// decodeBody parses the request body as JSON. An empty body is not an error;
// it yields a nil payload.
func decodeBody(body io.Reader) (any, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return payload, nil
}

// routeParams copies echo's matched path parameters into a plain map.
func routeParams(c echo.Context) map[string]string {
	names := c.ParamNames()
	params := make(map[string]string, len(names))
	for _, name := range names {
		params[name] = c.Param(name)
	}
	return params
}
