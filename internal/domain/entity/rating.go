// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds enforced both by the service layer and by a database CHECK constraint.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is post-delivery feedback tied to an order, the chef that cooked it,
// the recipe that was ordered and the customer who wrote it.
type Rating struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the rating.
	OrderID   uuid.UUID // The delivered order being rated. One rating per order.
	UserID    uuid.UUID // The customer writing the rating.
	ChefID    uuid.UUID // The chef whose aggregates this rating feeds.
	RecipeID  uuid.UUID // The recipe whose aggregates this rating feeds.
	Value     int       // Star value, constrained to [1,5].
	Comment   string    // Optional free-form feedback.
	CreatedAt time.Time // Timestamp of when this rating was written.
}

// IsValidValue reports whether v is an acceptable rating value.
func IsValidValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}
