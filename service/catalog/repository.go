package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"companion.GO/core/errs"
	entity "companion.GO/model/entity/catalog"
	catalogRepo "companion.GO/model/repository/catalog"
)

// RepositoryProvider reads the catalog from the database.
type RepositoryProvider struct {
	repo *catalogRepo.CatalogRepository
}

func NewRepositoryProvider(db *gorm.DB) *RepositoryProvider {
	return &RepositoryProvider{repo: catalogRepo.NewCatalogRepository(db)}
}

func (p *RepositoryProvider) Groups(context.Context) (map[string]RecommendationGroup, error) {
	rows, err := p.repo.Groups()
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	out := make(map[string]RecommendationGroup, len(rows))
	for _, g := range rows {
		out[g.Key] = groupFromEntity(g)
	}
	return out, nil
}

func (p *RepositoryProvider) Product(_ context.Context, id string) (Product, error) {
	e, err := p.repo.FindProduct(id)
	if err != nil {
		return Product{}, fmt.Errorf("load product %s: %w", id, err)
	}
	if e == nil {
		return Product{}, errs.NotFoundf("%s: %s", errs.ErrMsgProductNotFound, id)
	}
	return productFromEntity(*e), nil
}

func productFromEntity(e entity.Product) Product {
	return Product{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Price:       e.Price,
		Description: e.Description,
		Image:       e.Image,
	}
}

func groupFromEntity(e entity.RecommendationGroup) RecommendationGroup {
	g := RecommendationGroup{
		Key:         e.Key,
		Title:       e.Title,
		Description: e.Description,
		Discount:    e.Discount,
		Savings:     e.Savings,
		Products:    make([]Product, 0, len(e.Products)),
	}
	for _, gp := range e.Products {
		g.Products = append(g.Products, productFromEntity(gp.Product))
	}
	return g
}

// Seed writes groups into the database in the given order.
func Seed(db *gorm.DB, groups map[string]RecommendationGroup, order []string) error {
	repo := catalogRepo.NewCatalogRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}
	var (
		products []entity.Product
		headers  []entity.RecommendationGroup
		links    []entity.GroupProduct
		seen     = make(map[string]bool)
	)
	for pos, key := range order {
		g, ok := groups[key]
		if !ok {
			continue
		}
		headers = append(headers, entity.RecommendationGroup{
			Key:         key,
			Title:       g.Title,
			Description: g.Description,
			Discount:    g.Discount,
			Savings:     g.Savings,
			Position:    pos,
		})
		for i, p := range g.Products {
			if !seen[p.ID] {
				seen[p.ID] = true
				products = append(products, entity.Product{
					ID:          p.ID,
					Name:        p.Name,
					Category:    p.Category,
					Price:       p.Price,
					Description: p.Description,
					Image:       p.Image,
				})
			}
			links = append(links, entity.GroupProduct{GroupKey: key, ProductID: p.ID, Position: i})
		}
	}
	return db.Transaction(func(tx *gorm.DB) error {
		r := catalogRepo.NewCatalogRepository(tx)
		if err := r.UpsertProducts(products, 100); err != nil {
			return err
		}
		if err := r.UpsertGroups(headers); err != nil {
			return err
		}
		return r.UpsertMemberships(links, 100)
	})
}
