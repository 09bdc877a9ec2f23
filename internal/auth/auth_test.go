package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hookflow/pkg/models"
)

func TestEvaluate_None_AlwaysAllows(t *testing.T) {
	cases := []Credentials{
		{},
		{APIKey: "anything"},
		{Authorization: "Bearer whatever"},
		{APIKey: "a", Authorization: "b"},
	}
	for _, creds := range cases {
		assert.NoError(t, Evaluate(models.NoAuth(), creds))
	}
}

func TestEvaluate_ZeroPolicy_Allows(t *testing.T) {
	// A definition that never set an auth policy behaves as auth none.
	assert.NoError(t, Evaluate(models.AuthPolicy{}, Credentials{}))
}

func TestEvaluate_APIKey(t *testing.T) {
	policy := models.APIKeyAuth("k1")

	assert.NoError(t, Evaluate(policy, Credentials{APIKey: "k1"}))

	err := Evaluate(policy, Credentials{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	err = Evaluate(policy, Credentials{APIKey: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidAPIKey)

	// A bearer header is no substitute for the key.
	err = Evaluate(policy, Credentials{Authorization: "Bearer k1"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestEvaluate_Bearer(t *testing.T) {
	policy := models.BearerAuth("t1")

	assert.NoError(t, Evaluate(policy, Credentials{Authorization: "Bearer t1"}))

	err := Evaluate(policy, Credentials{})
	assert.ErrorIs(t, err, ErrMissingBearer)

	err = Evaluate(policy, Credentials{Authorization: "t1"})
	assert.ErrorIs(t, err, ErrInvalidBearer)

	err = Evaluate(policy, Credentials{Authorization: "Bearer nope"})
	assert.ErrorIs(t, err, ErrInvalidBearer)

	err = Evaluate(policy, Credentials{Authorization: "bearer t1"})
	assert.ErrorIs(t, err, ErrInvalidBearer, "scheme comparison is exact")
}

func TestEvaluate_UnknownKind_Denies(t *testing.T) {
	err := Evaluate(models.AuthPolicy{Kind: "oauth"}, Credentials{})
	assert.Error(t, err)
}

func TestFromRequest_HeaderWinsOverQuery(t *testing.T) {
	r := httptest.NewRequest("POST", "/wf?apiKey=from-query", nil)
	r.Header.Set("x-api-key", "from-header")
	r.Header.Set("Authorization", "Bearer tok")

	creds := FromRequest(r)
	assert.Equal(t, "from-header", creds.APIKey)
	assert.Equal(t, "Bearer tok", creds.Authorization)
}

func TestFromRequest_QueryFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/wf?apiKey=from-query", nil)

	creds := FromRequest(r)
	assert.Equal(t, "from-query", creds.APIKey)
	assert.Empty(t, creds.Authorization)
}
