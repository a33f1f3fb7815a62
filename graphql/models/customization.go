package models

import (
	"sort"

	gql "github.com/graph-gophers/graphql-go"

	"companion.GO/service/customization"
)

type Option struct {
	ID              gql.ID
	Name            string
	Type            string
	Value           string
	Image           string
	PriceAdjustment float64
}

type OptionCategory struct {
	Name    string
	Options []*Option
}

type SelectedOption struct {
	Type  string
	Value string
}

type Customization struct {
	ID         gql.ID
	ProductID  gql.ID
	Categories []*OptionCategory
	Defaults   []*SelectedOption
}

type ReviewLine struct {
	Type       string
	Value      string
	Name       string
	Adjustment float64
	Available  bool
}

type Quote struct {
	ProductID  gql.ID
	BasePrice  float64
	FinalPrice float64
	Lines      []*ReviewLine
}

// categoryOrder follows the wizard steps; unknown categories sort after, by name.
var categoryOrder = map[string]int{
	customization.CategoryStones:   0,
	customization.CategoryMetals:   1,
	customization.CategorySizes:    2,
	customization.CategoryLengths:  3,
	customization.CategoryFinishes: 4,
}

func rank(name string) int {
	if r, ok := categoryOrder[name]; ok {
		return r
	}
	return len(categoryOrder)
}

func MapCustomization(pc customization.ProductCustomization) *Customization {
	out := &Customization{ID: gql.ID(pc.ID), ProductID: gql.ID(pc.ProductID)}
	names := make([]string, 0, len(pc.AvailableOptions))
	for name := range pc.AvailableOptions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if rank(names[i]) != rank(names[j]) {
			return rank(names[i]) < rank(names[j])
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		cat := &OptionCategory{Name: name}
		for _, o := range pc.AvailableOptions[name] {
			cat.Options = append(cat.Options, &Option{
				ID:              gql.ID(o.ID),
				Name:            o.Name,
				Type:            string(o.Type),
				Value:           o.Value,
				Image:           o.Image,
				PriceAdjustment: o.PriceAdjustment,
			})
		}
		out.Categories = append(out.Categories, cat)
	}
	types := make([]string, 0, len(pc.DefaultOptions))
	for t := range pc.DefaultOptions {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		out.Defaults = append(out.Defaults, &SelectedOption{Type: t, Value: pc.DefaultOptions[customization.OptionType(t)]})
	}
	return out
}

func MapReview(lines []customization.ReviewLine) []*ReviewLine {
	out := make([]*ReviewLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, &ReviewLine{
			Type:       string(l.Type),
			Value:      l.Value,
			Name:       l.Name,
			Adjustment: l.Adjustment,
			Available:  l.Available,
		})
	}
	return out
}
