package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "task-tracker-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func stubValidator(expectedToken string, payload *idtoken.Payload) idTokenValidator {
	return func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
		if idToken != expectedToken {
			return nil, errors.New("idtoken: invalid token")
		}
		if audience != "client-id" {
			return nil, errors.New("idtoken: audience provided does not match aud claim in the JWT")
		}
		return payload, nil
	}
}

func TestGoogleVerifier_VerifyIDToken(t *testing.T) {
	v := NewGoogleVerifier("client-id", "client-secret", "postmessage")
	v.validate = stubValidator("good-token", &idtoken.Payload{
		Subject: "google-sub-1",
		Claims: map[string]interface{}{
			"email":   "alice@example.com",
			"name":    "Alice Example",
			"picture": "https://example.com/a.png",
		},
	})

	t.Run("valid token", func(t *testing.T) {
		identity, err := v.VerifyIDToken(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "google-sub-1", identity.Subject)
		assert.Equal(t, "alice@example.com", identity.Email)
		assert.Equal(t, "Alice Example", identity.Name)
		assert.Equal(t, "https://example.com/a.png", identity.Picture)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := v.VerifyIDToken(context.Background(), "bad-token")
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("not configured", func(t *testing.T) {
		unconfigured := NewGoogleVerifier("", "", "")
		_, err := unconfigured.VerifyIDToken(context.Background(), "good-token")
		assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
	})
}

func TestGoogleVerifier_ExchangeCode(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		if r.Form.Get("code") != "auth-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600,"id_token":"good-token"}`))
	}))
	defer tokenServer.Close()

	v := NewGoogleVerifier("client-id", "client-secret", "postmessage")
	v.oauth.Endpoint = oauth2.Endpoint{TokenURL: tokenServer.URL, AuthStyle: oauth2.AuthStyleInParams}
	v.validate = stubValidator("good-token", &idtoken.Payload{Subject: "google-sub-2", Claims: map[string]interface{}{}})

	t.Run("valid code", func(t *testing.T) {
		identity, err := v.ExchangeCode(context.Background(), "auth-code")
		require.NoError(t, err)
		assert.Equal(t, "google-sub-2", identity.Subject)
		assert.Empty(t, identity.Picture)
	})

	t.Run("invalid code", func(t *testing.T) {
		_, err := v.ExchangeCode(context.Background(), "wrong")
		assert.True(t, apperrors.IsAuthentication(err))
	})
}
