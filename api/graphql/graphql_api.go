package graphql

import (
	"net/http"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"companion.GO/api"
	"companion.GO/graphqlserver"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// RegisterGraphQLRoutes mounts /graphql and /playground.
func RegisterGraphQLRoutes(e *echo.Echo, deps *api.Deps) {
	schema, err := graphqlserver.NewSchema(deps.Catalog, deps.Options)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	RegisterGraphQLRoutesWithSchema(e, schema)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a prebuilt schema.
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *gql.Schema) {
	h := echo.WrapHandler(graphqlserver.Handler(schema))
	e.POST("/graphql", h)
	e.GET("/graphql", h)
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}
