package identity

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/forgelabs/forgectl/internal/errors"
)

// whoamiResponse carries the tokenized session under one of several field
// names depending on the provider version
type whoamiResponse struct {
	Tokenized string `json:"tokenized"`
	Token     string `json:"token"`
	JWT       string `json:"jwt"`
}

// bearerAccessors is the fixed precedence for extracting the bearer token:
// tokenized, then token, then jwt. The first non-empty match wins.
var bearerAccessors = []func(*whoamiResponse) string{
	func(r *whoamiResponse) string { return r.Tokenized },
	func(r *whoamiResponse) string { return r.Token },
	func(r *whoamiResponse) string { return r.JWT },
}

// ExchangeForBearerToken trades a session token for a JWT-style bearer token
// via the whoami endpoint. Failures here are recoverable: the caller is
// expected to continue with an empty bearer token rather than abort.
func (c *Client) ExchangeForBearerToken(ctx context.Context, sessionToken string) (string, error) {
	endpoint := c.BaseURL + "/sessions/whoami?tokenize_as=" + url.QueryEscape(c.JWTTemplate)

	body, _, err := c.get(ctx, endpoint, map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer " + sessionToken,
	})
	if err != nil {
		return "", err
	}

	var resp whoamiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.NewProtocolError(endpoint, "whoami response is not valid JSON")
	}

	for _, accessor := range bearerAccessors {
		if token := accessor(&resp); token != "" {
			return token, nil
		}
	}

	return "", errors.New(errors.ErrCodeTokenExchange, "whoami response carries no bearer token")
}
