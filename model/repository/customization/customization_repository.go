package customization

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "companion.GO/model/entity/customization"
)

type CustomizationRepository struct {
	db *gorm.DB
}

func NewCustomizationRepository(db *gorm.DB) *CustomizationRepository {
	return &CustomizationRepository{db: db}
}

func (r *CustomizationRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&entity.Option{}, &entity.ProductCustomization{}, &entity.CustomizationLink{})
}

// FindByProductID loads a customization with its option links. Returns (nil, nil) when absent.
func (r *CustomizationRepository) FindByProductID(productID string) (*entity.ProductCustomization, error) {
	var pc entity.ProductCustomization
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("category ASC, position ASC")
		}).
		Preload("Options.Option").
		First(&pc, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

// Save upserts options, the customization row and its links in one transaction.
func (r *CustomizationRepository) Save(options []entity.Option, pc entity.ProductCustomization) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(options) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "type", "value", "image", "price_adjustment"}),
			}).Create(&options).Error; err != nil {
				return err
			}
		}
		links := pc.Options
		pc.Options = nil
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"product_id", "default_options"}),
		}).Create(&pc).Error; err != nil {
			return err
		}
		if err := tx.Where("customization_id = ?", pc.ID).Delete(&entity.CustomizationLink{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		for i := range links {
			links[i].CustomizationID = pc.ID
		}
		return tx.Omit("Option").Create(&links).Error
	})
}
