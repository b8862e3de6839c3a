package session

// Record is the durable session artifact other Forge tools read. The field
// set and order are fixed: token, user_id, workspace_id, jwt_token, email.
// Optional values are persisted as empty strings, never omitted.
type Record struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	JWTToken    string `json:"jwt_token"`
	Email       string `json:"email"`
}
