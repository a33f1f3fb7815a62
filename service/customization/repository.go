package customization

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"companion.GO/core/errs"
	entity "companion.GO/model/entity/customization"
	customizationRepo "companion.GO/model/repository/customization"
)

// RepositorySource loads customizations from the database.
type RepositorySource struct {
	repo *customizationRepo.CustomizationRepository
}

func NewRepositorySource(db *gorm.DB) *RepositorySource {
	return &RepositorySource{repo: customizationRepo.NewCustomizationRepository(db)}
}

func (s *RepositorySource) Customization(_ context.Context, productID string) (ProductCustomization, error) {
	row, err := s.repo.FindByProductID(productID)
	if err != nil {
		return ProductCustomization{}, fmt.Errorf("load customization %s: %w", productID, err)
	}
	if row == nil {
		return ProductCustomization{}, errs.NotFoundf("%s: %s", errs.ErrMsgWizardNotFound, productID)
	}
	pc := ProductCustomization{
		ID:               row.ID,
		ProductID:        row.ProductID,
		AvailableOptions: make(map[string][]Option),
		DefaultOptions:   make(map[OptionType]string, len(row.DefaultOptions)),
	}
	for _, link := range row.Options {
		o := link.Option
		pc.AvailableOptions[link.Category] = append(pc.AvailableOptions[link.Category], Option{
			ID:              o.ID,
			Name:            o.Name,
			Type:            OptionType(o.Type),
			Value:           o.Value,
			Image:           o.Image,
			PriceAdjustment: o.PriceAdjustment,
		})
	}
	for k, v := range row.DefaultOptions {
		if str, ok := v.(string); ok {
			pc.DefaultOptions[OptionType(k)] = str
		}
	}
	return pc, nil
}

// Seed stores customizations and their options.
func Seed(db *gorm.DB, customizations []ProductCustomization) error {
	repo := customizationRepo.NewCustomizationRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate customization: %w", err)
	}
	for _, pc := range customizations {
		var (
			options []entity.Option
			links   []entity.CustomizationLink
			seen    = make(map[string]bool)
		)
		for cat, opts := range pc.AvailableOptions {
			for i, o := range opts {
				if !seen[o.ID] {
					seen[o.ID] = true
					options = append(options, entity.Option{
						ID:              o.ID,
						Name:            o.Name,
						Type:            string(o.Type),
						Value:           o.Value,
						Image:           o.Image,
						PriceAdjustment: o.PriceAdjustment,
					})
				}
				links = append(links, entity.CustomizationLink{OptionID: o.ID, Category: cat, Position: i})
			}
		}
		defaults := datatypes.JSONMap{}
		for t, v := range pc.DefaultOptions {
			defaults[string(t)] = v
		}
		row := entity.ProductCustomization{
			ID:             pc.ID,
			ProductID:      pc.ProductID,
			DefaultOptions: defaults,
			Options:        links,
		}
		if err := repo.Save(options, row); err != nil {
			return fmt.Errorf("save customization %s: %w", pc.ID, err)
		}
	}
	return nil
}
