// Package audit captures the security-relevant outcomes of the decision
// layer: authorizations completed or denied, tokens issued, credentials
// revoked. Events are emitted best-effort from the endpoint handlers and fan
// out to a pluggable sink; an emit failure never fails the request that
// produced it.
package audit

import "time"

// Action classifies what happened.
type Action string

const (
	ActionAuthorizationIssued Action = "authorization_issued"
	ActionAuthorizationDenied Action = "authorization_denied"
	ActionTokenIssued         Action = "token_issued"
	ActionTokenDenied         Action = "token_denied"
	ActionTokenRevoked        Action = "token_revoked"
	ActionUserInfoAccessed    Action = "userinfo_accessed"
)

// Event is one audit record. Keep it transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	// Reason is set on denials: the fail reason sent to the backend.
	Reason string `json:"reason,omitempty"`
}
