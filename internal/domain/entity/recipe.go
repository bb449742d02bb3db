// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a dish offered by exactly one chef under exactly one category.
// Rating and TotalRatings are denormalized aggregates maintained transactionally
// by the rating service; see ChefProfile for the same discipline.
type Recipe struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the recipe.
	ChefID          uuid.UUID // The chef profile (user ID) that owns this recipe.
	CategoryID      uuid.UUID // The category this recipe is listed under.
	Name            string    // Display name of the dish.
	Description     string    // Ingredients, portion size, allergy notes.
	Price           float64   // Unit price charged per serving.
	ImageURL        string    // Reference to externally hosted artwork.
	PrepTimeMinutes int       // Typical preparation time, used for delivery estimates.
	IsAvailable     bool      // Unavailable recipes cannot be ordered.
	Rating          float64   // Average rating value for this recipe.
	TotalRatings    int       // Number of ratings backing the average.
	CreatedAt       time.Time // Timestamp of when this recipe was created.
	UpdatedAt       time.Time // Timestamp of the last modification.
}
