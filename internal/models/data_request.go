package models

import "time"

const (
	RequestCorrection = "correction"
	RequestDeletion   = "deletion"
)

// DataRequest records a correction/deletion ask. Terminal state updates
// are administrative and happen outside this service: nothing here
// mutates Status after creation.
type DataRequest struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	RequestType string    `json:"request_type"`
	Reason      *string   `json:"reason,omitempty"`
	Details     *string   `json:"details,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
