package models

import (
	gql "github.com/graph-gophers/graphql-go"

	"companion.GO/service/catalog"
	"companion.GO/service/chat"
)

type Product struct {
	ID          gql.ID
	Name        string
	Category    string
	Price       float64
	Description string
	Image       string
}

type RecommendationGroup struct {
	Key         string
	Title       string
	Description string
	Discount    *float64
	Savings     *float64
	Products    []*Product
}

type Response struct {
	Intent          string
	Content         string
	Recommendations []*RecommendationGroup
}

type Suggestion struct {
	Text   string
	Action string
}

func MapProduct(p catalog.Product) *Product {
	return &Product{
		ID:          gql.ID(p.ID),
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
	}
}

func MapGroup(g catalog.RecommendationGroup) *RecommendationGroup {
	out := &RecommendationGroup{
		Key:         g.Key,
		Title:       g.Title,
		Description: g.Description,
		Discount:    g.Discount,
		Savings:     g.Savings,
		Products:    make([]*Product, 0, len(g.Products)),
	}
	for _, p := range g.Products {
		out.Products = append(out.Products, MapProduct(p))
	}
	return out
}

func MapGroups(groups []catalog.RecommendationGroup) []*RecommendationGroup {
	out := make([]*RecommendationGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, MapGroup(g))
	}
	return out
}

func MapResponse(r chat.Response) *Response {
	return &Response{
		Intent:          string(r.Intent),
		Content:         r.Content,
		Recommendations: MapGroups(r.Recommendations),
	}
}

func MapSuggestions(in []chat.Suggestion) []*Suggestion {
	out := make([]*Suggestion, 0, len(in))
	for _, s := range in {
		out = append(out, &Suggestion{Text: s.Text, Action: s.Action})
	}
	return out
}
