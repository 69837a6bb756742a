package auth

import (
	"context"
	"fmt"

	apperrors "task-tracker-backend/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// GoogleIdentity is the verified identity carried by a Google ID token
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleVerifier verifies Google sign-in credentials against the registered client id
type GoogleVerifier struct {
	clientID string
	oauth    *oauth2.Config
	validate idTokenValidator
}

// NewGoogleVerifier creates a verifier for ID tokens and authorization codes
func NewGoogleVerifier(clientID, clientSecret, redirectURL string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		validate: idtoken.Validate,
	}
}

// VerifyIDToken checks the token's signature, expiry and audience and extracts the identity
func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, rawToken string) (*GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, apperrors.ErrProviderNotConfigured
	}

	payload, err := v.validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFederatedAuth, err)
	}
	if payload.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", apperrors.ErrFederatedAuth)
	}

	return &GoogleIdentity{
		Subject: payload.Subject,
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
	}, nil
}

// ExchangeCode trades an authorization code for tokens and verifies the returned ID token
func (v *GoogleVerifier) ExchangeCode(ctx context.Context, code string) (*GoogleIdentity, error) {
	if v.clientID == "" || v.oauth.ClientSecret == "" {
		return nil, apperrors.ErrProviderNotConfigured
	}

	token, err := v.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %v", apperrors.ErrFederatedAuth, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: no id_token in token response", apperrors.ErrFederatedAuth)
	}

	return v.VerifyIDToken(ctx, rawIDToken)
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
