package middleware

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/snezamha/cms-core/internal/common/cnst"
)

var langMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Persian,
	language.German,
})

// LanguageMiddleware negotiates the request language and stores it on
// the context for localized responses. Order: X-Lang header, the
// dashboard settings cookie, Accept-Language, default locale.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(cnst.XLang, negotiateLanguage(c))
		c.Next()
	}
}

func negotiateLanguage(c *gin.Context) string {
	if lang := c.GetHeader(cnst.XLang); cnst.IsLocale(lang) {
		return lang
	}

	if raw, err := c.Cookie(cnst.SettingsCookie); err == nil && raw != "" {
		var prefs struct {
			Locale string `json:"locale"`
		}
		if err := json.Unmarshal([]byte(raw), &prefs); err == nil && cnst.IsLocale(prefs.Locale) {
			return prefs.Locale
		}
	}

	if accept := c.GetHeader("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			_, idx, conf := langMatcher.Match(tags...)
			if conf > language.No {
				return cnst.Locales[idx]
			}
		}
	}

	return cnst.LangEN
}
