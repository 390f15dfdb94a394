package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' relation. The composite primary key
// enforces one row per (user, product) pair.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`

	User    *ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
