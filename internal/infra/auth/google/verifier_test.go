package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wellness/config"
	"wellness/internal/domain/service"
	"wellness/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newConfig(env, clientID string, skip bool) *config.Config {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: clientID, SkipVerification: skip}}
	cfg.Env.Env = env

	return cfg
}

func TestVerifier_ValidToken(t *testing.T) {
	v := NewVerifier(newConfig("production", "client-123", false), newDiscardLogger()).(*verifier)
	v.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "id-token", token)
		assert.Equal(t, "client-123", audience)

		return &idtoken.Payload{
			Subject: "1098",
			Claims:  map[string]any{"email": "ana@x.com", "name": "Ana"},
		}, nil
	}

	identity, err := v.Verify(context.Background(), "id-token", "ignored@x.com", "ignored")
	require.NoError(t, err)
	assert.Equal(t, &service.FederatedIdentity{SubjectID: "1098", Email: "ana@x.com", Name: "Ana"}, identity)
}

func TestVerifier_RejectedToken(t *testing.T) {
	v := NewVerifier(newConfig("production", "client-123", false), newDiscardLogger()).(*verifier)
	v.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	}

	_, err := v.Verify(context.Background(), "id-token", "ana@x.com", "Ana")
	assert.ErrorIs(t, err, service.ErrIdentityTokenInvalid)
}

func TestVerifier_PayloadWithoutEmail(t *testing.T) {
	v := NewVerifier(newConfig("production", "client-123", false), newDiscardLogger()).(*verifier)
	v.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "1098", Claims: map[string]any{}}, nil
	}

	_, err := v.Verify(context.Background(), "id-token", "ana@x.com", "Ana")
	assert.ErrorIs(t, err, service.ErrIdentityTokenInvalid)
}

func TestVerifier_SkipVerification(t *testing.T) {
	v := NewVerifier(newConfig("development", "client-123", true), newDiscardLogger())

	identity, err := v.Verify(context.Background(), "anything", "Ana.Silva@x.com", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "google_ana_silva_x_com", identity.SubjectID)
	assert.Equal(t, "Ana.Silva@x.com", identity.Email)
	assert.Equal(t, "Ana", identity.Name)
}

func TestVerifier_DevelopmentWithoutClientIDSkips(t *testing.T) {
	v := NewVerifier(newConfig("development", "", false), newDiscardLogger()).(*verifier)
	assert.True(t, v.skip)
}

func TestVerifier_ProductionWithoutClientIDRejects(t *testing.T) {
	v := NewVerifier(newConfig("production", "", false), newDiscardLogger())

	_, err := v.Verify(context.Background(), "id-token", "ana@x.com", "Ana")
	assert.ErrorIs(t, err, service.ErrIdentityTokenInvalid)
}
