package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "task-tracker-backend/internal/errors"
)

// DefaultVerifyURL is Google's reCAPTCHA siteverify endpoint
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaVerifier checks challenge-response tokens against the reCAPTCHA siteverify API
type RecaptchaVerifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// NewRecaptchaVerifier creates a verifier. An empty verifyURL selects DefaultVerifyURL.
func NewRecaptchaVerifier(secret, verifyURL string) *RecaptchaVerifier {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &RecaptchaVerifier{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify returns nil when the provider accepts the token. A missing or rejected token yields a
// validation error; transport or decoding failures are returned as plain errors.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrCaptchaTokenRequired
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build reCAPTCHA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reCAPTCHA verification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("reCAPTCHA verification returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode reCAPTCHA response: %w", err)
	}
	if !result.Success {
		return apperrors.ErrCaptchaFailed
	}
	return nil
}
