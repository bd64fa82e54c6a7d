package i18n

// Partial Hindi catalog. Missing keys fall back to en-US.
var messagesHI = map[string]string{
	"error.bad_request":         "अमान्य अनुरोध",
	"error.unauthorized":        "कृपया पहले साइन इन करें",
	"error.forbidden":           "आपको इसकी अनुमति नहीं है",
	"error.not_found":           "नहीं मिला",
	"error.internal":            "कुछ गलत हुआ, कृपया पुनः प्रयास करें",
	"error.rate_limited":        "बहुत अधिक प्रयास, कृपया बाद में प्रयास करें",
	"error.invalid_credentials": "ईमेल या पासवर्ड गलत है",
	"error.email_exists":        "इस ईमेल से खाता पहले से मौजूद है",
	"error.cart_empty":          "आपकी कार्ट खाली है",
	"error.order_not_found":     "ऑर्डर नहीं मिला",
	"error.item_not_available":  "यह आइटम अब उपलब्ध नहीं है",

	"order.status.pending":   "लंबित",
	"order.status.paid":      "भुगतान हो गया",
	"order.status.shipped":   "भेज दिया गया",
	"order.status.delivered": "डिलीवर हो गया",
	"order.status.cancelled": "रद्द",
}
