package catalog

import "time"

// Product represents the catalog_product table
type Product struct {
	ID          string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Category    string    `gorm:"column:category;size:64;index" json:"category"`
	Price       float64   `gorm:"column:price;type:decimal(12,2);not null;default:0" json:"price"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Image       string    `gorm:"column:image;size:512" json:"image"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "catalog_product"
}
