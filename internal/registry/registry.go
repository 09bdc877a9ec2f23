// Package registry holds the set of loaded workflow definitions. The
// registry is populated once at startup and read-only thereafter, so
// concurrent lookups need no locking.
package registry

import (
	"errors"
	"sort"

	"hookflow/pkg/models"
)

// ErrMissingID is returned when a definition without an id is registered.
var ErrMissingID = errors.New("workflow definition has no id")

// Logger defines the logging interface compatible with the application logger.
type Logger interface {
	Warn(msg string, args ...any)
}

// Registry maps workflow ids to their definitions.
type Registry struct {
	workflows map[string]*models.Workflow
	logger    Logger
}

// New creates an empty Registry. The logger may be nil.
func New(logger Logger) *Registry {
	return &Registry{
		workflows: make(map[string]*models.Workflow),
		logger:    logger,
	}
}

// Register inserts a definition keyed by its config id. Registering an id
// that already exists replaces the previous definition (last write wins) and
// logs a warning. A definition without an id is rejected.
func (r *Registry) Register(wf *models.Workflow) error {
	if wf == nil || wf.Config.ID == "" {
		return ErrMissingID
	}
	if _, exists := r.workflows[wf.Config.ID]; exists && r.logger != nil {
		r.logger.Warn("duplicate workflow id %q, replacing earlier definition", wf.Config.ID)
	}
	r.workflows[wf.Config.ID] = wf
	return nil
}

// Lookup returns the definition for id, or false when absent.
func (r *Registry) Lookup(id string) (*models.Workflow, bool) {
	wf, ok := r.workflows[id]
	return wf, ok
}

// All returns every registered definition, sorted by id.
func (r *Registry) All() []*models.Workflow {
	out := make([]*models.Workflow, 0, len(r.workflows))
	for _, wf := range r.workflows {
		out = append(out, wf)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Config.ID < out[j].Config.ID
	})
	return out
}

// Count returns the number of registered definitions.
func (r *Registry) Count() int {
	return len(r.workflows)
}
