package models

import "time"

// Actions that may be authorized with a one-time code.
const (
	ActionMembershipCheck = "membership_check"
	ActionCorrection      = "correction"
	ActionDeletion        = "deletion"
	ActionResignation     = "resignation"
)

func IsValidActionType(action string) bool {
	switch action {
	case ActionMembershipCheck, ActionCorrection, ActionDeletion, ActionResignation:
		return true
	}
	return false
}

// OTPCode is an ephemeral credential tied to (email, action_type).
// At most one unused code exists per pair; issuance deletes prior
// unused codes in the same transaction as the insert.
type OTPCode struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	Action    string    `json:"action_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}
