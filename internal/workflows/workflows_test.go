package workflows

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hookflow/pkg/models"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any) {}

func ec(id string) *models.ExecutionContext {
	return &models.ExecutionContext{InvocationID: "test", WorkflowID: id}
}

func TestEcho_ReturnsPayload(t *testing.T) {
	wf := Echo()
	payload := map[string]any{"a": 1}

	data, err := wf.Execute(context.Background(), payload, ec("echo"))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Nil(t, wf.Schema)
	assert.Equal(t, models.AuthNone, wf.Config.Auth.Kind)
}

func TestGreet_SchemaAndGreeting(t *testing.T) {
	wf := Greet()
	require.NotNil(t, wf.Schema)

	assert.False(t, wf.Schema.Validate(map[string]any{}).Valid)
	assert.False(t, wf.Schema.Validate(map[string]any{"name": ""}).Valid)
	assert.True(t, wf.Schema.Validate(map[string]any{"name": "Ada"}).Valid)

	data, err := wf.Execute(context.Background(), map[string]any{"name": "Ada"}, ec("greet"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"greeting": "Hello, Ada!"}, data)
}

func TestHeartbeat_IsScheduled(t *testing.T) {
	wf := Heartbeat(nopLogger{})
	assert.Equal(t, "* * * * *", wf.Config.Schedule)

	_, err := wf.Execute(context.Background(), map[string]any{"source": "cron"}, ec("heartbeat"))
	assert.NoError(t, err)
}

func TestForward_RelaysPayload(t *testing.T) {
	var received string
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		received = string(buf)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer downstream.Close()

	wf := Forward("forward", "k1", downstream.URL)
	assert.Equal(t, models.AuthAPIKey, wf.Config.Auth.Kind)

	data, err := wf.Execute(context.Background(), map[string]any{"a": 1}, ec("forward"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, received)
	assert.Equal(t, map[string]any{"forwarded": true, "downstreamStatus": http.StatusAccepted}, data)
}

func TestForward_DownstreamFailure(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer downstream.Close()

	wf := Forward("forward", "k1", downstream.URL)
	_, err := wf.Execute(context.Background(), map[string]any{}, ec("forward"))
	assert.Error(t, err)
}
