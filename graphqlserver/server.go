package graphqlserver

import (
	"context"
	"encoding/json"
	"errors"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"companion.GO/core/errs"
	"companion.GO/graphql"
	"companion.GO/graphql/models"
	"companion.GO/graphql/registry"
	"companion.GO/service/catalog"
	"companion.GO/service/chat"
	"companion.GO/service/customization"
)

// RootResolver implements the Query fields over the catalog and customization sources.
type RootResolver struct {
	Catalog catalog.Provider
	Options customization.Source
}

func (r *RootResolver) RecommendationGroups(ctx context.Context) ([]*models.RecommendationGroup, error) {
	groups, err := r.Catalog.Groups(ctx)
	if err != nil {
		return nil, err
	}
	return models.MapGroups(catalog.Ordered(groups)), nil
}

// Product returns null for unknown ids.
func (r *RootResolver) Product(ctx context.Context, args graphql.IDArgs) (*models.Product, error) {
	p, err := r.Catalog.Product(ctx, string(args.ID))
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return models.MapProduct(p), nil
}

// Respond runs the keyword responder without touching any session.
func (r *RootResolver) Respond(ctx context.Context, args graphql.RespondArgs) (*models.Response, error) {
	groups, err := r.Catalog.Groups(ctx)
	if err != nil {
		return nil, err
	}
	return models.MapResponse(chat.NewResponder(groups).Respond(args.Utterance)), nil
}

func (r *RootResolver) Customization(ctx context.Context, args graphql.ProductIDArgs) (*models.Customization, error) {
	pc, err := r.Options.Customization(ctx, string(args.ProductID))
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return models.MapCustomization(pc), nil
}

// Quote previews the final price of a product with the given options applied over its defaults.
func (r *RootResolver) Quote(ctx context.Context, args graphql.QuoteArgs) (*models.Quote, error) {
	p, err := r.Catalog.Product(ctx, string(args.ProductID))
	if err != nil {
		return nil, err
	}
	pc, err := r.Options.Customization(ctx, p.ID)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}
	w := customization.NewWizard(p, pc)
	if args.Options != nil {
		for _, o := range *args.Options {
			t, ok := customization.ParseOptionType(o.Type)
			if !ok {
				return nil, errs.Validationf("%s: %s", errs.ErrMsgOptionTypeUnknown, o.Type)
			}
			if err := w.Select(t, o.Value); err != nil {
				return nil, err
			}
		}
	}
	return &models.Quote{
		ProductID:  args.ProductID,
		BasePrice:  p.Price,
		FinalPrice: w.Price(),
		Lines:      models.MapReview(w.Review()),
	}, nil
}

func (r *RootResolver) Suggestions() []*models.Suggestion {
	return models.MapSuggestions(chat.Suggestions())
}

// Extension dispatches _extension(name, args) to the extension registry.
func (r *RootResolver) Extension(ctx context.Context, args graphql.ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, errs.Validationf("extension args: %v", err)
		}
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(provider catalog.Provider, options customization.Source) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Catalog: provider, Options: options}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
