package public

import (
	"github.com/circuitaura/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContactInfo returns the store's contact endpoints with ready-to-open
// WhatsApp and mailto links.
func (h *Handler) GetContactInfo(c *gin.Context) {
	response.Success(c, h.ContactService.Info())
}
