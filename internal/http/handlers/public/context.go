package public

import (
	"strconv"

	handlershared "github.com/circuitaura/storefront/internal/http/handlers/shared"
	"github.com/circuitaura/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return handlershared.NormalizePagination(page, pageSize)
}

func respondPage(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	response.SuccessWithPage(c, data, handlershared.BuildPagination(page, pageSize, total))
}

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getUserID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}
