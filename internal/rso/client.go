// Package rso talks to the Riot Sign-On identity provider: it builds the
// sign-in URL and exchanges authorization codes for token sets.
package rso

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"golang.org/x/oauth2"

	"github.com/rso-sample-apps/rso-web/internal/config"
	"github.com/rso-sample-apps/rso-web/internal/constants"
)

type Client struct {
	conf       *config.Config
	httpClient *http.Client
}

func NewClient(conf *config.Config) *Client {
	return &Client{
		conf:       conf,
		httpClient: &http.Client{Timeout: conf.Server.Timeout},
	}
}

func (c *Client) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:    c.conf.RSO.ClientID,
		RedirectURL: c.conf.CallbackURL(),
		Scopes:      strings.Fields(c.conf.RSO.Scope),
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.conf.AuthorizeURL(),
			TokenURL: c.conf.TokenURL(),
		},
	}
}

// SignInURL is the authorization endpoint with the redirect_uri,
// client_id, response_type and scope parameters from configuration.
func (c *Client) SignInURL() string {
	return c.oauth2Config().AuthCodeURL("",
		oauth2.SetAuthURLParam(constants.QueryParamResponseType, c.conf.RSO.ResponseType))
}

// Exchange posts the authorization code to the token endpoint with HTTP
// Basic client authentication and returns the raw response body. The body
// is passed through without schema validation; unknown keys must survive,
// so oauth2.Config.Exchange (which parses into oauth2.Token) is not used.
func (c *Client) Exchange(ctx context.Context, code string) ([]byte, error) {
	form := url.Values{}
	form.Set("grant_type", constants.GrantTypeAuthorizationCode)
	form.Set(constants.QueryParamAuthorizationCode, code)
	form.Set(constants.QueryParamRedirectURI, c.conf.CallbackURL())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conf.TokenURL(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.conf.RSO.ClientID, c.conf.RSO.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint: %s", resp.Status)
	}
	return body, nil
}

// HandoffQuery serializes the top-level keys of a token response object
// as 'k=v&' pairs in document order, trailing '&' included. Anything
// that is not a JSON object yields the empty string.
func HandoffQuery(body []byte) string {
	var sb strings.Builder
	_ = jsonparser.ObjectEach(body, func(key, value []byte, _ jsonparser.ValueType, _ int) error {
		fmt.Fprintf(&sb, "%s=%s&", key, value)
		return nil
	})
	return sb.String()
}

// TokenField extracts a top-level string field from a token response.
func TokenField(body []byte, key string) string {
	v, err := jsonparser.GetString(body, key)
	if err != nil {
		return ""
	}
	return v
}

// IDTokenClaims returns the claims of an id_token as a JSON object. The
// signature is NOT verified; the result is for display only.
func IDTokenClaims(idToken string) ([]byte, error) {
	tok, err := jwt.ParseInsecure([]byte(idToken))
	if err != nil {
		return nil, fmt.Errorf("failed to parse id_token: %w", err)
	}
	b, err := json.Marshal(tok)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal id_token claims: %w", err)
	}
	return b, nil
}
