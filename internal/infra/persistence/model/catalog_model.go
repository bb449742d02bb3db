package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table, the static recipe taxonomy.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// RecipeModel mirrors the 'recipes' table. ChefID references chef_profiles.user_id
// and CategoryID references categories.id. Rating and TotalRatings are the
// denormalized pair maintained transactionally with each rating insert.
type RecipeModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChefID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(150);not null"`
	Description     string    `gorm:"type:text"`
	Price           float64   `gorm:"type:decimal(10,2);not null"`
	ImageURL        string    `gorm:"type:varchar(500)"`
	PrepTimeMinutes int       `gorm:"not null;default:0"`
	IsAvailable     bool      `gorm:"not null;default:true"`
	Rating          float64   `gorm:"type:decimal(3,2);not null;default:0"`
	TotalRatings    int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Chef     *ChefProfileModel `gorm:"foreignKey:ChefID"`
	Category *CategoryModel    `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
