package config

// GetAuthSkipperPaths returns the route paths the widget calls without credentials.
// Catalog and customization imports stay behind auth.
func GetAuthSkipperPaths() []string {
	return []string{
		"/api/sessions",
		"/api/sessions/:id",
		"/api/sessions/:id/messages",
		"/api/sessions/:id/selection/:productId",
		"/api/sessions/:id/groups/select-all",
		"/api/sessions/:id/groups/add-to-cart",
		"/api/sessions/:id/cart",
		"/api/sessions/:id/cart/:productId",
		"/api/sessions/:id/cart/open",
		"/api/sessions/:id/cart/close",
		"/api/sessions/:id/cart/checkout",
		"/api/sessions/:id/wizards",
		"/api/sessions/:id/wizards/:wid",
		"/api/sessions/:id/wizards/:wid/select",
		"/api/sessions/:id/wizards/:wid/complete",
		"/api/catalog/groups",
		"/api/catalog/products/:id",
		"/api/realtime/price",
		"/api/relay/status",
	}
}
