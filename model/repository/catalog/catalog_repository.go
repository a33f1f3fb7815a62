package catalog

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "companion.GO/model/entity/catalog"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// AutoMigrate creates the catalog tables.
func (r *CatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&entity.Product{}, &entity.RecommendationGroup{}, &entity.GroupProduct{})
}

// Groups returns every group ordered by position with products in group order.
func (r *CatalogRepository) Groups() ([]entity.RecommendationGroup, error) {
	var groups []entity.RecommendationGroup
	err := r.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, product_id ASC")
		}).
		Preload("Products.Product").
		Order("position ASC, group_key ASC").
		Find(&groups).Error
	return groups, err
}

// FindProduct returns (nil, nil) when the product does not exist.
func (r *CatalogRepository) FindProduct(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProductsByIDs returns existing products keyed by id.
func (r *CatalogRepository) FindProductsByIDs(ids []string) (map[string]entity.Product, error) {
	var rows []entity.Product
	if len(ids) > 0 {
		if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
	}
	out := make(map[string]entity.Product, len(rows))
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

// UpsertProducts inserts or updates products by id in batches.
func (r *CatalogRepository) UpsertProducts(products []entity.Product, batchSize int) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "category", "price", "description", "image", "updated_at"}),
	}).CreateInBatches(&products, batchSize).Error
}

// UpsertGroups inserts or updates group headers.
func (r *CatalogRepository) UpsertGroups(groups []entity.RecommendationGroup) error {
	if len(groups) == 0 {
		return nil
	}
	return r.db.Omit("Products").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "discount", "savings", "position"}),
	}).Create(&groups).Error
}

// EnsureGroups creates bare groups for keys that do not exist yet.
func (r *CatalogRepository) EnsureGroups(keys []string) error {
	for i, k := range keys {
		g := entity.RecommendationGroup{Key: k, Title: k, Position: 100 + i}
		if err := r.db.Omit("Products").Clauses(clause.OnConflict{DoNothing: true}).Create(&g).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpsertMemberships links products into groups, updating positions.
func (r *CatalogRepository) UpsertMemberships(links []entity.GroupProduct, batchSize int) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.Omit("Product").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_key"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position"}),
	}).CreateInBatches(&links, batchSize).Error
}

// CountProducts returns the number of catalog products.
func (r *CatalogRepository) CountProducts() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Product{}).Count(&n).Error
	return n, err
}
