package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate maps Postgres unique-constraint violations (email,
// id_number, membership_number) so services can report a soft
// "already registered" failure instead of a raw driver error.
var ErrDuplicate = errors.New("duplicate record")

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
