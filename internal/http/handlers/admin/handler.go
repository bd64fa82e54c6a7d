package admin

import "github.com/circuitaura/storefront/internal/provider"

// Handler serves the admin console API. Every route behind it requires
// the admin role.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
