package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locale identifiers.
const (
	LocaleEN = "en-US"
	LocaleHI = "hi-IN"
)

// DefaultLocale is used when resolution fails.
const DefaultLocale = LocaleEN

// ResolveLocale picks the response locale for a request. Priority:
// lang query param, X-Locale header, Accept-Language header.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		if normalized := Normalize(lang); normalized != "" {
			return normalized
		}
	}
	if lang := strings.TrimSpace(c.GetHeader("X-Locale")); lang != "" {
		if normalized := Normalize(lang); normalized != "" {
			return normalized
		}
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if normalized := Normalize(tag); normalized != "" {
			return normalized
		}
	}
	return DefaultLocale
}

// Normalize maps a language tag onto a supported locale, empty when unknown.
func Normalize(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	switch {
	case strings.HasPrefix(t, "en"):
		return LocaleEN
	case strings.HasPrefix(t, "hi"):
		return LocaleHI
	default:
		return ""
	}
}

// T returns the message for key in the given locale. Missing entries fall
// back to the default locale, then to the key itself.
func T(locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if locale != DefaultLocale {
		if msg, ok := catalogs[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf formats the localized message for key with args.
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if format == key {
		return key
	}
	return fmt.Sprintf(format, args...)
}

var catalogs = map[string]map[string]string{
	LocaleEN: messagesEN,
	LocaleHI: messagesHI,
}
