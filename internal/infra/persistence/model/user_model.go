package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(30)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles       []RoleModel       `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
	ChefProfile *ChefProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table, a static reference set of role names.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(50);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel mirrors the 'user_roles' join table. The composite primary key
// keeps (user_id, role_id) unique; rows cascade away with their user.
type UserRoleModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// ChefProfileModel mirrors the 'chef_profiles' table. UserID references users.id (UUID).
// Rating, TotalRatings, TotalOrders and TotalEarnings are denormalized aggregates
// maintained by the application inside the transaction that changes them.
type ChefProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	KitchenName   string    `gorm:"type:varchar(100);not null"`
	Bio           string    `gorm:"type:text"`
	Rating        float64   `gorm:"type:decimal(3,2);not null;default:0"`
	TotalRatings  int       `gorm:"not null;default:0"`
	TotalOrders   int       `gorm:"not null;default:0"`
	TotalEarnings float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChefProfileModel) TableName() string {
	return "chef_profiles"
}
