package identity

import (
	"context"
	"encoding/json"

	"github.com/forgelabs/forgectl/internal/errors"
)

// fallbackRejection is used when the provider gives no usable reason at all
const fallbackRejection = "login rejected by identity service"

// Credentials is the operator's identifier/secret pair. It lives in memory
// only and is never persisted.
type Credentials struct {
	Identifier string
	Secret     string
}

// LoginResult is what a successful credential submission yields
type LoginResult struct {
	SessionToken string
	UserID       string
	WorkspaceID  string
}

// submitLoginRequest is the password-method submission body
type submitLoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Method     string `json:"method"`
}

// loginResponse covers both outcomes of a submission: a session on success,
// or one of the provider's failure shapes. The provider may answer HTTP 200
// with a flow document describing a validation failure, so presence of the
// session token is the only success signal.
type loginResponse struct {
	SessionToken string `json:"session_token"`
	Session      struct {
		Identity struct {
			ID             string `json:"id"`
			MetadataPublic struct {
				CompanyID string `json:"company_id"`
			} `json:"metadata_public"`
		} `json:"identity"`
	} `json:"session"`
	UI struct {
		Messages []uiMessage `json:"messages"`
	} `json:"ui"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

type uiMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// rejectionAccessors is the fixed precedence for deriving a human-readable
// rejection reason: ui.messages[0].text, then error.message, then message.
// Each tier is consulted only if the previous yielded nothing.
var rejectionAccessors = []func(*loginResponse) string{
	func(r *loginResponse) string {
		if len(r.UI.Messages) > 0 {
			return r.UI.Messages[0].Text
		}
		return ""
	},
	func(r *loginResponse) string { return r.Error.Message },
	func(r *loginResponse) string { return r.Message },
}

func rejectionReason(r *loginResponse) string {
	for _, accessor := range rejectionAccessors {
		if reason := accessor(r); reason != "" {
			return reason
		}
	}
	return fallbackRejection
}

// SubmitLogin posts the credentials to the flow's submission URL. On success
// it returns the session token, the identity id, and the optional workspace
// id from the identity's public metadata; the workspace id may be empty
// without that being an error. When the provider withholds a session token
// the returned error carries the provider-derived rejection reason.
func (c *Client) SubmitLogin(ctx context.Context, submissionURL string, creds Credentials) (*LoginResult, error) {
	body, _, err := c.postJSON(ctx, submissionURL, submitLoginRequest{
		Identifier: creds.Identifier,
		Password:   creds.Secret,
		Method:     "password",
	})
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewProtocolError(submissionURL, "login response is not valid JSON")
	}

	if resp.SessionToken == "" {
		reason := rejectionReason(&resp)
		c.logger.Debug("credentials rejected", "reason", reason)
		return nil, errors.NewLoginRejectedError(reason)
	}

	result := &LoginResult{
		SessionToken: resp.SessionToken,
		UserID:       resp.Session.Identity.ID,
		WorkspaceID:  resp.Session.Identity.MetadataPublic.CompanyID,
	}
	c.logger.Debug("credentials accepted", "user_id", result.UserID, "workspace_id", result.WorkspaceID)
	return result, nil
}
