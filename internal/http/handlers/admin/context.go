package admin

import (
	"strconv"
	"strings"
	"time"

	handlershared "github.com/circuitaura/storefront/internal/http/handlers/shared"
	"github.com/circuitaura/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return handlershared.NormalizePagination(page, pageSize)
}

func respondPage(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	response.SuccessWithPage(c, data, handlershared.BuildPagination(page, pageSize, total))
}

func parsePathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return 0, false
	}
	return uint(id), true
}

// parseTimeNullable parses an RFC 3339 or date-only value; empty means nil.
func parseTimeNullable(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
