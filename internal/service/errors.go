package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// response codes and i18n keys; anything else is treated as an internal error.
var (
	ErrNotFound = errors.New("record not found")

	// Accounts.
	ErrEmailExists          = errors.New("email already registered")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidPassword      = errors.New("current password incorrect")
	ErrWeakPassword         = errors.New("password too weak")
	ErrUserDisabled         = errors.New("account disabled")
	ErrAdminKeyInvalid      = errors.New("admin signup key invalid")
	ErrThemeInvalid         = errors.New("theme invalid")
	ErrProfileEmpty         = errors.New("no profile fields to update")
	ErrRoleInvalid          = errors.New("role invalid")
	ErrUserStatusInvalid    = errors.New("user status invalid")
	ErrSelfChangeNotAllowed = errors.New("cannot change own account")

	// Password reset codes.
	ErrVerifyCodeInvalid          = errors.New("verify code invalid")
	ErrVerifyCodeExpired          = errors.New("verify code expired")
	ErrVerifyCodeTooFrequent      = errors.New("verify code requested too frequently")
	ErrVerifyCodeAttemptsExceeded = errors.New("verify code attempts exceeded")

	// Email delivery.
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")

	// Captcha.
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")

	// Catalog and cart.
	ErrItemKindInvalid     = errors.New("item kind invalid")
	ErrItemNotAvailable    = errors.New("item not available")
	ErrQuantityInvalid     = errors.New("quantity invalid")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrResourceTypeInvalid = errors.New("resource type invalid")
	ErrPriceInvalid        = errors.New("price invalid")

	// Orders.
	ErrAddressInvalid        = errors.New("shipping address invalid")
	ErrPhoneInvalid          = errors.New("phone must be 10 digits")
	ErrPincodeInvalid        = errors.New("pincode must be 6 digits")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderStatusInvalid    = errors.New("order status transition not allowed")
	ErrOrderCancelNotAllowed = errors.New("only pending orders can be cancelled")
	ErrOrderDeleteNotAllowed = errors.New("only cancelled orders can be removed")

	// Uploads.
	ErrUploadFileRequired   = errors.New("upload file required")
	ErrUploadTooLarge       = errors.New("upload file too large")
	ErrUploadTypeNotAllowed = errors.New("upload file type not allowed")
	ErrUploadSceneInvalid   = errors.New("upload scene invalid")
	ErrUploadImageTooLarge  = errors.New("upload image dimensions too large")
)
