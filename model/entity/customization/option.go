package customization

import "gorm.io/datatypes"

// Option represents the customization_option table (Color Bar stones, metals, sizes).
type Option struct {
	ID              string  `gorm:"column:id;primaryKey;size:64" json:"id"`
	Name            string  `gorm:"column:name;size:255;not null" json:"name"`
	Type            string  `gorm:"column:type;size:32;index;not null" json:"type"`
	Value           string  `gorm:"column:value;size:64;not null" json:"value"`
	Image           string  `gorm:"column:image;size:512" json:"image,omitempty"`
	PriceAdjustment float64 `gorm:"column:price_adjustment;type:decimal(12,2);not null;default:0" json:"price_adjustment"`
}

func (Option) TableName() string {
	return "customization_option"
}

// ProductCustomization represents the product_customization table.
// DefaultOptions maps option type to value, e.g. {"stone": "rose-quartz"}.
type ProductCustomization struct {
	ID             string              `gorm:"column:id;primaryKey;size:64" json:"id"`
	ProductID      string              `gorm:"column:product_id;size:64;uniqueIndex;not null" json:"product_id"`
	DefaultOptions datatypes.JSONMap   `gorm:"column:default_options" json:"default_options"`
	Options        []CustomizationLink `gorm:"foreignKey:CustomizationID;references:ID" json:"options,omitempty"`
}

func (ProductCustomization) TableName() string {
	return "product_customization"
}

// CustomizationLink offers an option under a category ("stones") for one customization.
type CustomizationLink struct {
	CustomizationID string `gorm:"column:customization_id;primaryKey;size:64" json:"customization_id"`
	OptionID        string `gorm:"column:option_id;primaryKey;size:64" json:"option_id"`
	Category        string `gorm:"column:category;size:32;not null" json:"category"`
	Position        int    `gorm:"column:position;not null;default:0" json:"position"`
	Option          Option `gorm:"foreignKey:OptionID;references:ID" json:"option"`
}

func (CustomizationLink) TableName() string {
	return "product_customization_option"
}
