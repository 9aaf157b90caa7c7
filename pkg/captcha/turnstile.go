package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Verifier checks Turnstile challenge tokens against the siteverify endpoint.
// Any outcome other than an explicit success from the provider counts as a
// rejected challenge.
type Verifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

type Config struct {
	Secret   string
	Endpoint string        // defaults to DefaultEndpoint
	Timeout  time.Duration // bound on the outbound call; defaults to 5s
}

func New(cfg Config) *Verifier {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Verifier{
		secret:   cfg.Secret,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// siteverifyResponse mirrors the provider's JSON reply. Only the success flag
// matters for the decision; error codes are kept for operator diagnostics.
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify performs one form-encoded POST with the pre-shared secret, the
// supplied token, and the caller's address when known. A nil return means the
// provider confirmed the token; every other shape of reply is an error.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("captcha: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("captcha: siteverify call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("captcha: siteverify returned status %d", resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("captcha: decode siteverify response: %w", err)
	}
	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return fmt.Errorf("captcha: challenge rejected: %s", strings.Join(result.ErrorCodes, ", "))
		}
		return fmt.Errorf("captcha: challenge rejected")
	}
	return nil
}
