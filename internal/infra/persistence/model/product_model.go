package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title       string                      `gorm:"type:varchar(200);not null"`
	Description string                      `gorm:"type:text;not null"`
	Price       float64                     `gorm:"type:decimal(14,2);not null;check:price > 0"`
	Currency    string                      `gorm:"type:varchar(3);not null"`
	CategoryID  uuid.UUID                   `gorm:"type:uuid;not null;index"`
	City        string                      `gorm:"type:varchar(100);not null;index"`
	Condition   string                      `gorm:"type:varchar(20);not null"`
	PhotoURLs   datatypes.JSONSlice[string] `gorm:"column:photo_urls;type:jsonb;not null;default:'[]'"`
	IsActive    bool                        `gorm:"not null;default:true;index"`
	CreatedAt   time.Time                   `gorm:"index"`
	UpdatedAt   time.Time

	Seller   *ProfileModel  `gorm:"foreignKey:SellerID;constraint:OnDelete:RESTRICT"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'categories' reference table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
