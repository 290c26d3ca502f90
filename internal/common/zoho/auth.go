package zoho

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"lead-intake/internal/common/errors"

	"golang.org/x/oauth2"
)

// Credentials is the single set of Zoho OAuth client credentials.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	APIDomain    string
	// AccountsDomain overrides the domain derived from APIDomain. It is empty
	// in production and set for sandboxes and tests.
	AccountsDomain string
}

// ResolveAccountsDomain returns the override if set, else AccountsDomain(APIDomain).
func (c Credentials) ResolveAccountsDomain() string {
	if c.AccountsDomain != "" {
		return c.AccountsDomain
	}
	return AccountsDomain(c.APIDomain)
}

// TokenClient exchanges a refresh token for a short-lived access token.
// Tokens are never cached; every call hits the token endpoint.
type TokenClient struct {
	httpClient *http.Client
}

func NewTokenClient(httpClient *http.Client) *TokenClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &TokenClient{httpClient: httpClient}
}

// RefreshAccessToken posts refresh_token, client_id, client_secret and
// grant_type=refresh_token to {accounts}/oauth/v2/token. Every failure is
// returned as a TOKEN_REFRESH_FAILED StandardError whose details carry the
// provider's error code when one was sent.
func (c *TokenClient) RefreshAccessToken(ctx context.Context, creds Credentials) (string, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     Endpoint(creds.ResolveAccountsDomain()),
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken}).Token()
	if err != nil {
		return "", errors.NewTokenRefreshFailedError(tokenErrorDetail(err))
	}
	if token.AccessToken == "" {
		return "", errors.NewTokenRefreshFailedError("Failed to get access token.")
	}
	return token.AccessToken, nil
}

// tokenErrorDetail prefers the "error" field of the token response (Zoho
// answers 200 with {"error":"invalid_client"} on bad credentials).
func tokenErrorDetail(err error) string {
	var rErr *oauth2.RetrieveError
	if stderrors.As(err, &rErr) {
		if rErr.ErrorCode != "" {
			return rErr.ErrorCode
		}
		if body := strings.TrimSpace(string(rErr.Body)); body != "" {
			return body
		}
	}
	return err.Error()
}
