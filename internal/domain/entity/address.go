// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by a user.
// The "at most one default address per user" rule is not expressed in the
// schema; the address service enforces it with a transactional check-and-set.
type Address struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID     uuid.UUID // The user that owns this address.
	Label      string    // A user-defined label, e.g., "Home", "Office".
	Street     string    // Street line including house/flat number.
	City       string    // City name.
	State      string    // State or province.
	PostalCode string    // Postal or ZIP code.
	Phone      string    // Contact phone for the courier at this address.
	IsDefault  bool      // Indicates if this is the user's default delivery address.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}
