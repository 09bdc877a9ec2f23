package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hookflow/pkg/models"
)

type captureLogger struct {
	warnings []string
}

func (l *captureLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(msg, args...))
}

func def(id string) *models.Workflow {
	return &models.Workflow{
		Config: models.Config{ID: id},
		Execute: func(ctx context.Context, payload any, ec *models.ExecutionContext) (any, error) {
			return nil, nil
		},
	}
}

func TestRegister_RejectsMissingID(t *testing.T) {
	reg := New(nil)
	assert.ErrorIs(t, reg.Register(def("")), ErrMissingID)
	assert.ErrorIs(t, reg.Register(nil), ErrMissingID)
	assert.Equal(t, 0, reg.Count())
}

func TestRegister_LastWriteWins(t *testing.T) {
	logger := &captureLogger{}
	reg := New(logger)

	first := def("dup")
	second := def("dup")
	require.NoError(t, reg.Register(first))
	require.NoError(t, reg.Register(second))

	got, ok := reg.Lookup("dup")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, reg.Count())
	assert.Len(t, logger.warnings, 1)
}

func TestLookup_Absent(t *testing.T) {
	reg := New(nil)
	_, ok := reg.Lookup("nope")
	assert.False(t, ok)
}

func TestAll_SortedByID(t *testing.T) {
	reg := New(nil)
	for _, id := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(def(id)))
	}

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Config.ID)
	assert.Equal(t, "mid", all[1].Config.ID)
	assert.Equal(t, "zeta", all[2].Config.ID)
}
