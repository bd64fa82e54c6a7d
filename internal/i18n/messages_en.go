package i18n

var messagesEN = map[string]string{
	// Generic.
	"error.bad_request":            "Invalid request",
	"error.unauthorized":           "Please sign in first",
	"error.forbidden":              "You do not have permission to do that",
	"error.not_found":              "Not found",
	"error.internal":               "Something went wrong, please try again",
	"error.rate_limited":           "Too many attempts, please try again later",
	"error.rate_limited_wait":      "Too many attempts, please retry in %d seconds",
	"error.rate_limit_unavailable": "Service is busy, please try again later",

	// Tokens and sessions.
	"error.token_missing":        "Authorization token is required",
	"error.token_invalid":        "Session is invalid, please sign in again",
	"error.token_expired":        "Session has expired, please sign in again",
	"error.user_id_invalid":      "User identity is invalid",
	"error.user_id_type_invalid": "User identity could not be read",

	// Accounts.
	"error.user_not_found":         "Account does not exist",
	"error.user_disabled":          "Account has been disabled",
	"error.email_exists":           "An account with this email already exists",
	"error.invalid_email":          "Email address is invalid",
	"error.invalid_credentials":    "Email or password is incorrect",
	"error.weak_password":          "Password does not meet the strength requirements",
	"error.weak_password_length":   "Password must be at least %d characters",
	"error.weak_password_upper":    "Password must contain an uppercase letter",
	"error.weak_password_lower":    "Password must contain a lowercase letter",
	"error.weak_password_number":   "Password must contain a number",
	"error.weak_password_special":  "Password must contain a special character",
	"error.admin_key_invalid":      "Admin signup key is incorrect",
	"error.role_invalid":           "Role is invalid",
	"error.user_status_invalid":    "Account status is invalid",
	"error.self_change_forbidden":  "You cannot change your own account here",
	"error.theme_invalid":          "Theme is invalid",
	"error.old_password_incorrect": "Current password is incorrect",
	"error.register_failed":        "Sign up failed, please try again",
	"error.login_failed":           "Sign in failed, please try again",
	"error.profile_update_failed":  "Profile update failed, please try again",

	// Password reset codes.
	"error.verify_code_invalid":      "Verification code is incorrect",
	"error.verify_code_expired":      "Verification code has expired",
	"error.verify_code_too_frequent": "Please wait before requesting another code",
	"error.verify_code_send_failed":  "Could not send the verification code",
	"error.email_service_disabled":   "Email delivery is not available",

	// Captcha.
	"error.captcha_required": "Captcha is required",
	"error.captcha_invalid":  "Captcha is incorrect",

	// Catalog.
	"error.product_not_found":      "Product not found",
	"error.kit_not_found":          "Kit not found",
	"error.resource_not_found":     "Resource not found",
	"error.resource_type_invalid":  "Resource type is invalid",
	"error.catalog_fetch_failed":   "Could not load the catalog",
	"error.catalog_save_failed":    "Could not save the item",
	"error.catalog_delete_failed":  "Could not delete the item",
	"error.price_invalid":          "Price is invalid",
	"error.name_required":          "Name is required",
	"error.title_required":         "Title is required",

	// Cart.
	"error.item_kind_invalid":  "Item kind is invalid",
	"error.item_not_available": "This item is no longer available",
	"error.quantity_invalid":   "Quantity must be at least 1",
	"error.cart_empty":         "Your cart is empty",
	"error.cart_fetch_failed":  "Could not load your cart",
	"error.cart_update_failed": "Could not update your cart",

	// Orders.
	"error.address_invalid":          "Shipping address is incomplete",
	"error.address_phone_invalid":    "Phone number must be exactly 10 digits",
	"error.address_pincode_invalid":  "Pincode must be exactly 6 digits",
	"error.order_not_found":          "Order not found",
	"error.order_fetch_failed":       "Could not load orders",
	"error.order_create_failed":      "Could not place the order",
	"error.order_update_failed":      "Could not update the order",
	"error.order_status_invalid":     "Order status change is not allowed",
	"error.order_cancel_not_allowed": "Only pending orders can be cancelled",
	"error.order_delete_not_allowed": "Only cancelled orders can be removed",

	// Uploads.
	"error.upload_file_required":     "A file is required",
	"error.upload_too_large":         "File is too large",
	"error.upload_type_not_allowed":  "File type is not allowed",
	"error.upload_scene_invalid":     "Upload scene is invalid",
	"error.upload_image_too_large":   "Image dimensions are too large",
	"error.upload_failed":            "Upload failed, please try again",

	// Order status labels for notifications.
	"order.status.pending":   "Pending",
	"order.status.paid":      "Paid",
	"order.status.shipped":   "Shipped",
	"order.status.delivered": "Delivered",
	"order.status.cancelled": "Cancelled",

	// Email templates.
	"email.verify_code.subject":       "Your CircuitAura password reset code",
	"email.verify_code.body":          "Your verification code is: %s\n\nThis code is for password reset. Do not share it.",
	"email.welcome.subject":           "Welcome to CircuitAura Electronics",
	"email.welcome.body":              "Hi %s,\n\nYour CircuitAura account is ready. Happy building!",
	"email.order_status.subject":      "Your order is now %s",
	"email.order_status.body":         "Order %s is now %s.\nOrder total: %s %s (cash on delivery).\n\nThank you for shopping with CircuitAura Electronics.",
	"email.order_status.body_placed":  "We received your order %s.\nOrder total: %s %s, payable on delivery.\n\nWe will email you as it moves along.",
}
