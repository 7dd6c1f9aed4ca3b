package middleware

import "github.com/gin-gonic/gin"

const localeKey = "locale"

// MessageSource resolves localized messages.
type MessageSource interface {
	Match(acceptLanguage string) string
	Message(locale, key string, params ...string) string
	DefaultLocale() string
}

// Locale stores the best supported locale for the request's Accept-Language header.
func Locale(messages MessageSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := messages.Match(c.GetHeader("Accept-Language"))
		c.Set(localeKey, locale)
		c.Header("Content-Language", locale)
		c.Next()
	}
}

// LocaleFrom returns the locale stored by Locale, or an empty string.
func LocaleFrom(c *gin.Context) string {
	return c.GetString(localeKey)
}
