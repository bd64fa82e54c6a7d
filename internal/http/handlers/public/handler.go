package public

import "github.com/circuitaura/storefront/internal/provider"

// Handler serves the storefront API: catalog, cart, checkout and account
// endpoints.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
