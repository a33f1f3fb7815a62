package customization

import (
	"context"

	"companion.GO/core/errs"
)

// Color Bar option sets.
var (
	Stones = []Option{
		{ID: "stone-1", Name: "Rose Quartz", Type: TypeStone, Value: "rose-quartz", Image: "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373483/stone-rose-quartz.jpg", PriceAdjustment: 0},
		{ID: "stone-2", Name: "Iridescent Drusy", Type: TypeStone, Value: "iridescent-drusy", Image: "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373504/stone-drusy.jpg", PriceAdjustment: 10},
		{ID: "stone-3", Name: "Mother of Pearl", Type: TypeStone, Value: "mother-of-pearl", Image: "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373526/stone-pearl.jpg", PriceAdjustment: 15},
	}
	Metals = []Option{
		{ID: "metal-1", Name: "Gold", Type: TypeMetal, Value: "gold", Image: "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373544/metal-gold.jpg", PriceAdjustment: 0},
		{ID: "metal-2", Name: "Rose Gold", Type: TypeMetal, Value: "rose-gold", Image: "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373566/metal-rose-gold.jpg", PriceAdjustment: 5},
		{ID: "metal-3", Name: "Silver", Type: TypeMetal, Value: "silver", Image: "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373584/metal-silver.jpg", PriceAdjustment: -5},
	}
	Sizes = []Option{
		{ID: "size-1", Name: `Small (6")`, Type: TypeSize, Value: "small"},
		{ID: "size-2", Name: `Medium (7")`, Type: TypeSize, Value: "medium"},
		{ID: "size-3", Name: `Large (8")`, Type: TypeSize, Value: "large"},
	}
)

// DefaultCustomizations returns the built-in customizable products.
func DefaultCustomizations() []ProductCustomization {
	return []ProductCustomization{
		{
			ID:        "custom-necklace-1",
			ProductID: "necklace-1",
			AvailableOptions: map[string][]Option{
				CategoryStones: append([]Option(nil), Stones...),
				CategoryMetals: append([]Option(nil), Metals...),
			},
			DefaultOptions: map[OptionType]string{TypeStone: "rose-quartz", TypeMetal: "gold"},
		},
		{
			ID:        "custom-bracelet-1",
			ProductID: "bracelet-1",
			AvailableOptions: map[string][]Option{
				CategoryStones: append([]Option(nil), Stones...),
				CategoryMetals: append([]Option(nil), Metals...),
				CategorySizes:  append([]Option(nil), Sizes...),
			},
			DefaultOptions: map[OptionType]string{TypeStone: "mother-of-pearl", TypeMetal: "gold", TypeSize: "medium"},
		},
	}
}

// StaticSource serves DefaultCustomizations.
type StaticSource struct {
	byProduct map[string]ProductCustomization
}

func NewStaticSource() *StaticSource {
	s := &StaticSource{byProduct: make(map[string]ProductCustomization)}
	for _, pc := range DefaultCustomizations() {
		s.byProduct[pc.ProductID] = pc
	}
	return s
}

func (s *StaticSource) Customization(_ context.Context, productID string) (ProductCustomization, error) {
	pc, ok := s.byProduct[productID]
	if !ok {
		return ProductCustomization{}, errs.NotFoundf("%s: %s", errs.ErrMsgWizardNotFound, productID)
	}
	return pc, nil
}
