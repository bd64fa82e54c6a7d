package public

import (
	"errors"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service error onto a response code and i18n key.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrItemKindInvalid, code: response.CodeBadRequest, key: "error.item_kind_invalid"},
	{target: service.ErrItemNotAvailable, code: response.CodeBadRequest, key: "error.item_not_available"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrAddressInvalid, code: response.CodeBadRequest, key: "error.address_invalid"},
	{target: service.ErrPhoneInvalid, code: response.CodeBadRequest, key: "error.address_phone_invalid"},
	{target: service.ErrPincodeInvalid, code: response.CodeBadRequest, key: "error.address_pincode_invalid"},
	{target: service.ErrItemKindInvalid, code: response.CodeBadRequest, key: "error.item_kind_invalid"},
}

var orderLifecycleErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderCancelNotAllowed, code: response.CodeBadRequest, key: "error.order_cancel_not_allowed"},
	{target: service.ErrOrderDeleteNotAllowed, code: response.CodeBadRequest, key: "error.order_delete_not_allowed"},
}
