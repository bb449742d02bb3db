package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. The unique index on OrderID makes
// one-rating-per-order a database guarantee; the CHECK on RatingValue is the
// last line of defence behind the service-level range validation.
type RatingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	ChefID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RatingValue int       `gorm:"not null;check:rating_value >= 1 AND rating_value <= 5"`
	Comment     string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
