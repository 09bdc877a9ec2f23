package dispatch

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"hookflow/pkg/models"
)

// BuildContext assembles the execution context for one invocation. The
// request-derived fields are copied verbatim; header names keep the
// transport's canonical casing and are not re-cased here.
func BuildContext(wf *models.Workflow, params map[string]string, query url.Values, headers http.Header) *models.ExecutionContext {
	if params == nil {
		params = map[string]string{}
	}
	if query == nil {
		query = url.Values{}
	}
	if headers == nil {
		headers = http.Header{}
	}
	return &models.ExecutionContext{
		InvocationID: uuid.New().String(),
		WorkflowID:   wf.Config.ID,
		Name:         wf.DisplayName(),
		Params:       params,
		Query:        query,
		Headers:      headers,
	}
}
