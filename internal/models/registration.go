package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Verification lifecycle of a registration.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Self-declared special interest group tags.
var SpecialInterestGroups = []string{
	"youth",
	"women",
	"pwd",
	"elderly",
	"diaspora",
}

func IsValidSIG(tag string) bool {
	for _, s := range SpecialInterestGroups {
		if s == tag {
			return true
		}
	}
	return false
}

type Registration struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	IDNumber              string     `json:"id_number"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Phone                 string     `json:"phone"`
	DateOfBirth           time.Time  `json:"date_of_birth"`
	Gender                string     `json:"gender"`
	County                string     `json:"county"`
	Constituency          string     `json:"constituency"`
	Ward                  string     `json:"ward"`
	DisabilityStatus      string     `json:"disability_status"`
	SpecialInterestGroups []string   `json:"special_interest_groups"`
	ConsentDataProcessing bool       `json:"consent_data_processing"`
	ConsentCommunications bool       `json:"consent_communications"`
	VerificationStatus    string     `json:"verification_status"`
	MembershipNumber      *string    `json:"membership_number,omitempty"`
	RejectionReason       *string    `json:"rejection_reason,omitempty"`
	VerifiedAt            *time.Time `json:"verified_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (r *Registration) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// MembershipStatus is the narrow projection returned by the public
// member-check path. Never carries raw registration rows.
type MembershipStatus struct {
	Exists             bool    `json:"exists"`
	VerificationStatus string  `json:"verification_status,omitempty"`
	MembershipNumber   *string `json:"membership_number,omitempty"`
}

const membershipNumberPrefix = "PSP-K"

// NextMembershipNumber computes the successor of the highest membership
// number already assigned in the given year. latest is the current
// highest number for that year ("" when none exists yet). The sequence
// restarts at 00001 each calendar year.
func NextMembershipNumber(latest string, year int) string {
	seq := 1
	if latest != "" {
		parts := strings.Split(latest, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s-%d-%05d", membershipNumberPrefix, year, seq)
}
