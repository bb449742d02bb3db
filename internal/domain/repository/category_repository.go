// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cookify/internal/domain/entity"
	"cookify/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the operations for the recipe taxonomy.
type CategoryRepository interface {
	// ListActive retrieves all active categories ordered by name.
	ListActive(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error
}
