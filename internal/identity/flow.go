package identity

import (
	"context"
	"encoding/json"

	"github.com/forgelabs/forgectl/internal/errors"
)

// loginFlowDocument is the subset of the provider's flow document we need:
// ui.action carries the exact URL (including the flow-id query parameter)
// that credentials must be posted to.
type loginFlowDocument struct {
	UI struct {
		Action string `json:"action"`
	} `json:"ui"`
}

// InitiateLoginFlow asks the identity service for a fresh API login flow and
// returns the submission URL. The URL is provider-supplied and must be used
// verbatim; it is never reconstructed. Any failure here is fatal for the
// whole login attempt.
func (c *Client) InitiateLoginFlow(ctx context.Context) (string, error) {
	endpoint := c.BaseURL + "/self-service/login/api"

	body, _, err := c.get(ctx, endpoint, map[string]string{"Accept": "application/json"})
	if err != nil {
		return "", err
	}

	var flow loginFlowDocument
	if err := json.Unmarshal(body, &flow); err != nil {
		return "", errors.NewProtocolError(endpoint, "flow document is not valid JSON")
	}
	if flow.UI.Action == "" {
		return "", errors.NewProtocolError(endpoint, "flow document has no ui.action submission URL")
	}

	c.logger.Debug("login flow initiated", "action", flow.UI.Action)
	return flow.UI.Action, nil
}
