package models

import "time"

// ResignationLogEntry is an append-only audit record, written before
// the registration row is deleted so the trail survives a failed delete.
type ResignationLogEntry struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IDNumber  string    `json:"id_number"`
	FullName  string    `json:"full_name"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
