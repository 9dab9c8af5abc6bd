// Package riot calls the downstream Riot APIs shown on the display page.
package riot

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/rso-sample-apps/rso-web/internal/config"
	"github.com/rso-sample-apps/rso-web/internal/constants"
)

const (
	accountPath          = "/riot/account/v1/accounts/me"
	championRotationPath = "/lol/platform/v3/champion-rotations"
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

// AccountData fetches the account of the signed-in user with the RSO
// access token as a bearer credential. Returns the raw JSON body.
func (c *Client) AccountData(ctx context.Context, accessToken string) ([]byte, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(ctx, src)
	client.Timeout = c.conf.Server.Timeout

	resp, err := client.Get(c.conf.Riot.AccountAPIBaseURL + accountPath)
	if err != nil {
		return nil, fmt.Errorf("account request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("account API: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read account response: %w", err)
	}
	return body, nil
}

// ChampionRotations fetches the free champion rotation with the static
// RGAPI token. Returns the raw JSON body.
func (c *Client) ChampionRotations(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.conf.Riot.PlatformAPIBaseURL+championRotationPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create champion rotation request: %w", err)
	}
	req.Header.Set(constants.HeaderRiotToken, c.conf.Riot.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("champion rotation request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("champion rotation API: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read champion rotation response: %w", err)
	}
	return body, nil
}
