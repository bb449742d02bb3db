// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing one account in the marketplace.
// A user may hold several roles (customer, chef, admin) at the same time.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Username     string       // Unique login name, also shown publicly on ratings.
	Email        string       // The user's primary contact email.
	PasswordHash string       // Bcrypt hash of the password. Never exposed outside the domain.
	Phone        string       // Contact phone number.
	IsActive     bool         // Deactivated accounts cannot log in or place orders.
	Roles        Roles        // Roles granted to this user.
	ChefProfile  *ChefProfile // A pointer to the chef-specific profile. Nil unless the user has the 'chef' role.
	CreatedAt    time.Time    // Timestamp of when this user account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this user's data.
}

// ChefProfile holds data specific to the "chef" role.
// Rating, TotalRatings, TotalOrders and TotalEarnings are denormalized aggregates:
// they are updated in the same transaction as the write that changes them
// (rating insert, order delivery) and must never be recomputed lazily by readers.
type ChefProfile struct {
	UserID        uuid.UUID // Foreign Key that links this profile to a core User entity.
	KitchenName   string    // The public name of the chef's home kitchen.
	Bio           string    // A short description of the chef and their cooking.
	Rating        float64   // Average of all rating values received across the chef's recipes.
	TotalRatings  int       // Number of ratings backing the average, needed for incremental updates.
	TotalOrders   int       // Count of orders delivered by this chef.
	TotalEarnings float64   // Sum of final_amount over delivered orders.
	CreatedAt     time.Time // Timestamp of when the profile was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this profile.
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return u.Roles.Contains(role)
}
