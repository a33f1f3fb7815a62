package catalog

// RecommendationGroup represents the catalog_recommendation_group table
type RecommendationGroup struct {
	Key         string         `gorm:"column:group_key;primaryKey;size:64" json:"key"`
	Title       string         `gorm:"column:title;size:255;not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Discount    *float64       `gorm:"column:discount;type:decimal(5,2)" json:"discount,omitempty"`
	Savings     *float64       `gorm:"column:savings;type:decimal(12,2)" json:"savings,omitempty"`
	Position    int            `gorm:"column:position;not null;default:0" json:"position"`
	Products    []GroupProduct `gorm:"foreignKey:GroupKey;references:Key" json:"products,omitempty"`
}

func (RecommendationGroup) TableName() string {
	return "catalog_recommendation_group"
}

// GroupProduct links a product into a group at a position.
type GroupProduct struct {
	GroupKey  string  `gorm:"column:group_key;primaryKey;size:64" json:"group_key"`
	ProductID string  `gorm:"column:product_id;primaryKey;size:64" json:"product_id"`
	Position  int     `gorm:"column:position;not null;default:0" json:"position"`
	Product   Product `gorm:"foreignKey:ProductID;references:ID" json:"product"`
}

func (GroupProduct) TableName() string {
	return "catalog_recommendation_group_product"
}
