package constants

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Cart and order item kind constants.
const (
	ItemKindProduct = "product"
	ItemKindKit     = "kit"
)

// Resource type constants.
const (
	ResourceTypeTutorial = "tutorial"
	ResourceTypeVideo    = "video"
	ResourceTypeDownload = "download"
)

// User role constants. Support is a narrow console role granted from the
// admin surface only; self-service registration never produces it.
const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleSupport = "support"
)

// User status constants.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// User theme constants.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Verify code purpose constants.
const (
	VerifyPurposeReset = "reset"
)

// Captcha provider constants.
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Captcha scene constants.
const (
	CaptchaSceneLogin = "login"
)

// Upload scene constants.
const (
	UploadSceneProduct  = "product"
	UploadSceneKit      = "kit"
	UploadSceneResource = "resource"
	UploadSceneCommon   = "common"
)

// Queue constants.
const (
	QueueDefault         = "default"
	TaskOrderStatusEmail = "order:status_email"
	TaskWelcomeEmail     = "user:welcome_email"
)

// Cache default constants.
const (
	RedisPrefixDefault = "ca"
)

// Site currency constant. Prices are rupee amounts with two decimals.
const (
	SiteCurrencyDefault = "INR"
)

// Site locale constants.
const (
	LocaleEnUS = "en-US"
	LocaleHiIN = "hi-IN"
)

// Supported site locales in fallback order.
var SupportedLocales = []string{LocaleEnUS, LocaleHiIN}
