package identity

import (
	"context"
)

// LoginSession is the outcome of a full login run: the accepted login result
// plus a best-effort bearer token (empty when the exchange failed).
type LoginSession struct {
	LoginResult
	BearerToken string
}

// Login drives the whole state machine:
//
//	Idle → FlowInitiated → CredentialsSubmitted → Authenticated →
//	TokenExchangeAttempted
//
// Flow initiation and credential submission failures abort the run. The
// token exchange always runs after authentication and its failure only
// leaves the bearer token empty. Persistence is the caller's step.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginSession, error) {
	submissionURL, err := c.InitiateLoginFlow(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Info("login flow initiated")

	result, err := c.SubmitLogin(ctx, submissionURL, creds)
	if err != nil {
		return nil, err
	}
	c.logger.Info("authenticated", "user_id", result.UserID)

	bearer, err := c.ExchangeForBearerToken(ctx, result.SessionToken)
	if err != nil {
		c.logger.WithError(err).Warn("token exchange failed; continuing without bearer token")
		bearer = ""
	}

	return &LoginSession{
		LoginResult: *result,
		BearerToken: bearer,
	}, nil
}
