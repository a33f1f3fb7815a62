package catalog

import (
	"context"
	"fmt"
	"sort"

	"companion.GO/core/errs"
)

// Group keys of the built-in catalog.
const (
	GroupNecklaces = "necklaces"
	GroupEarrings  = "earrings"
	GroupBracelets = "bracelets"
)

// Product is an immutable catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// RecommendationGroup is a titled, ordered set of products with an optional bundle discount.
type RecommendationGroup struct {
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Discount    *float64  `json:"discount,omitempty"`
	Savings     *float64  `json:"savings,omitempty"`
	Products    []Product `json:"products"`
}

// Contains reports whether id is one of the group's products.
func (g RecommendationGroup) Contains(id string) bool {
	for _, p := range g.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Provider gives read access to the catalog.
type Provider interface {
	Groups(ctx context.Context) (map[string]RecommendationGroup, error)
	Product(ctx context.Context, id string) (Product, error)
}

// Validate checks that a product id never maps to two different products across groups.
// The same product may appear in several groups.
func Validate(groups map[string]RecommendationGroup) error {
	seen := make(map[string]Product)
	for key, g := range groups {
		for _, p := range g.Products {
			if p.ID == "" {
				return errs.Validationf("group %s: %s", key, errs.ErrMsgProductIDRequired)
			}
			if prev, ok := seen[p.ID]; ok && prev != p {
				return errs.Validationf("group %s: product id %s reused for a different product", key, p.ID)
			}
			seen[p.ID] = p
		}
	}
	return nil
}

// FindInGroups looks a product up by id across groups.
func FindInGroups(groups map[string]RecommendationGroup, id string) (Product, error) {
	for _, g := range groups {
		for _, p := range g.Products {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return Product{}, errs.NotFound(fmt.Sprintf("%s: %s", errs.ErrMsgProductNotFound, id))
}

func float(v float64) *float64 { return &v }

// Ordered lists groups in GroupOrder, then any other keys alphabetically.
func Ordered(groups map[string]RecommendationGroup) []RecommendationGroup {
	out := make([]RecommendationGroup, 0, len(groups))
	seen := make(map[string]bool, len(GroupOrder))
	for _, k := range GroupOrder {
		if g, ok := groups[k]; ok {
			out = append(out, g)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(groups))
	for k := range groups {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		out = append(out, groups[k])
	}
	return out
}
