package admin

import (
	"errors"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadFile stores a catalog image or resource attachment and returns
// its public path. The scene comes from the form and picks the subdir.
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_file_required", err)
		return
	}

	path, err := h.UploadService.SaveFile(file, c.PostForm("scene"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadFileRequired):
			respondError(c, response.CodeBadRequest, "error.upload_file_required", nil)
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, response.CodeBadRequest, "error.upload_too_large", nil)
		case errors.Is(err, service.ErrUploadImageTooLarge):
			respondError(c, response.CodeBadRequest, "error.upload_image_too_large", nil)
		case errors.Is(err, service.ErrUploadTypeNotAllowed):
			respondError(c, response.CodeBadRequest, "error.upload_type_not_allowed", nil)
		case errors.Is(err, service.ErrUploadSceneInvalid):
			respondError(c, response.CodeBadRequest, "error.upload_scene_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.upload_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"url": path})
}
