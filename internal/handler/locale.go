package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/padauklog/internal/locale"
)

const localeContextKey = "__request_locale"

// LocaleMiddleware resolves the language from the :locale path segment.
// Burmese is the primary language; unknown segments are a 404 so that
// arbitrary prefixes never alias the home page.
func (a *API) LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		segment := strings.ToLower(strings.TrimSpace(c.Param("locale")))
		if !locale.IsSupported(segment) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		pref := locale.PreferenceForLanguage(segment)
		c.Set(localeContextKey, pref)
		c.Header("Content-Language", pref.HTMLLang)
		c.Next()
	}
}

// RedirectToDefaultLocale sends bare-root requests to the Burmese site,
// honoring an Accept-Language preference for English readers.
func RedirectToDefaultLocale(c *gin.Context) {
	target := locale.Default
	if preferred := locale.FromAcceptLanguage(c.GetHeader("Accept-Language")); preferred != "" {
		target = preferred
	}
	c.Redirect(http.StatusFound, "/"+target)
}

// CurrentLanguage returns the resolved request language, falling back
// to the default for routes outside the locale group.
func CurrentLanguage(c *gin.Context) string {
	if cached, exists := c.Get(localeContextKey); exists {
		if pref, ok := cached.(locale.Preference); ok {
			return pref.Language
		}
	}
	return locale.Default
}

// buildLanguageSwitch maps each supported language to the same page in
// that language, for the header switcher.
func buildLanguageSwitch(c *gin.Context) map[string]string {
	path := "/"
	if c.Request != nil && c.Request.URL != nil {
		path = c.Request.URL.Path
	}
	current := CurrentLanguage(c)
	alternate := locale.Alternate(current)

	swapped := path
	prefix := "/" + current
	if swapped == prefix {
		swapped = "/" + alternate
	} else if strings.HasPrefix(swapped, prefix+"/") {
		swapped = "/" + alternate + strings.TrimPrefix(swapped, prefix)
	}

	return map[string]string{
		current:   path,
		alternate: swapped,
	}
}
