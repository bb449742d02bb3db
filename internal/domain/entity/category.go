// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a static taxonomy entry used to group recipes.
type Category struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name        string    // Display name, unique across categories.
	Description string    // Optional description shown when browsing.
	ImageURL    string    // Reference to externally hosted artwork.
	IsActive    bool      // Inactive categories are hidden from browsing.
	CreatedAt   time.Time // Timestamp of when this category was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
