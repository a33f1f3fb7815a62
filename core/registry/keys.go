package registry

// Core keys for GlobalRegistry and per-request values.
const (
	// Per-request (set on echo.Context)
	KeyRequestStart = "request_start"
	KeySessionID    = "session_id"

	// Extension registries (cmd, cron, api, routes, graphql) stored in GlobalRegistry
	KeyRegistryCmd     = "registry:cmd"
	KeyRegistryCron    = "registry:cron"
	KeyRegistryAPI     = "registry:api"
	KeyRegistryRoutes  = "registry:routes"
	KeyRegistryGraphQL = "registry:graphql"
)
