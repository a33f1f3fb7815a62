package catalog

import "context"

// StaticProvider serves the built-in jewelry catalog.
type StaticProvider struct {
	groups map[string]RecommendationGroup
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{groups: DefaultGroups()}
}

func (s *StaticProvider) Groups(context.Context) (map[string]RecommendationGroup, error) {
	return cloneGroups(s.groups), nil
}

func (s *StaticProvider) Product(_ context.Context, id string) (Product, error) {
	return FindInGroups(s.groups, id)
}

// GroupOrder is the display order of the built-in groups.
var GroupOrder = []string{GroupNecklaces, GroupEarrings, GroupBracelets}

// DefaultGroups returns a fresh copy of the built-in catalog.
func DefaultGroups() map[string]RecommendationGroup {
	return map[string]RecommendationGroup{
		GroupNecklaces: {
			Key:         GroupNecklaces,
			Title:       "Signature Necklace Collection",
			Description: "Our most-loved necklaces featuring signature stones and designs",
			Discount:    float(20),
			Savings:     float(30),
			Products: []Product{
				{
					ID:          "necklace-1",
					Name:        "Elisa Gold Pendant Necklace",
					Category:    "Necklaces",
					Description: "A versatile pendant necklace featuring a signature stone",
					Price:       75,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373437/772-00071_bxjdx9.jpg",
				},
				{
					ID:          "necklace-2",
					Name:        "Elaina Gold Multi Strand Necklace",
					Category:    "Necklaces",
					Description: "Delicate layered chains with adjustable length",
					Price:       85,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373461/Kendra-Scott-Emilie-Muti-Strand-Necklace-Iridescent-Drusy-Gold-00_sy3yf9.jpg",
				},
				{
					ID:          "necklace-3",
					Name:        "Ari Heart Gold Pendant Necklace",
					Category:    "Necklaces",
					Description: "Heart-shaped pendant with crystal accents",
					Price:       65,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373483/Kendra-Scott-Ari-Heart-Pendant-Necklace-Rose-Quartz-Gold-01_t97ccg.jpg",
				},
			},
		},
		GroupEarrings: {
			Key:         GroupEarrings,
			Title:       "Statement Earring Collection",
			Description: "Bold and elegant earrings for any occasion",
			Discount:    float(15),
			Savings:     float(25),
			Products: []Product{
				{
					ID:          "earring-1",
					Name:        "Lee Gold Drop Earrings",
					Category:    "Earrings",
					Description: "Classic drop earrings with a modern twist",
					Price:       65,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373504/Kendra-Scott-Lee-Earring-Gold-Iridescent-Drusy-00_cak7fh.jpg",
				},
				{
					ID:          "earring-2",
					Name:        "Madelyn Gold Hoops",
					Category:    "Earrings",
					Description: "Timeless hoop earrings with crystal detail",
					Price:       70,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373526/s-l1200_dpipnu.jpg",
				},
				{
					ID:          "earring-3",
					Name:        "Elle Gold Stud Earrings",
					Category:    "Earrings",
					Description: "Versatile studs for everyday wear",
					Price:       55,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373544/665-02378_ugglc9.jpg",
				},
			},
		},
		GroupBracelets: {
			Key:         GroupBracelets,
			Title:       "Bracelet Collection",
			Description: "Stackable bracelets and statement cuffs",
			Discount:    float(25),
			Savings:     float(35),
			Products: []Product{
				{
					ID:          "bracelet-1",
					Name:        "Elaina Gold Chain Bracelet",
					Category:    "Bracelets",
					Description: "Adjustable chain bracelet with signature stone detail",
					Price:       55,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373566/kendra-scott-elaina-gold-adjustable-bracelet-in-ivory-pearl_00_default_lg_eqivc5.jpg",
				},
				{
					ID:          "bracelet-2",
					Name:        "Dira Gold Cuff",
					Category:    "Bracelets",
					Description: "Bold cuff bracelet with crystal accents",
					Price:       95,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373584/705-43991_nebi6y.jpg",
				},
				{
					ID:          "bracelet-3",
					Name:        "Macrame Friendship Bracelet",
					Category:    "Bracelets",
					Description: "Colorful adjustable bracelet with stone charm",
					Price:       45,
					Image:       "https://res.cloudinary.com/dbtapyfau/image/upload/v1758373640/kendra-scott-threaded-elle-friendship-bracelet-gold-goldstone-burnt-orange-thread-00-lg_qktdns.jpg",
				},
			},
		},
	}
}

func cloneGroups(in map[string]RecommendationGroup) map[string]RecommendationGroup {
	out := make(map[string]RecommendationGroup, len(in))
	for k, g := range in {
		g.Products = append([]Product(nil), g.Products...)
		out[k] = g
	}
	return out
}
