package cnst

const (
	// XLang is the header carrying the client's language preference
	XLang = "X-Lang"

	// SettingsCookie is the browser cookie persisted by the dashboard,
	// a JSON object {theme, mode, radius, layout, locale}
	SettingsCookie = "settings"

	// IdentityKey is the gin context key holding the verified identity
	IdentityKey = "identity"
)

// Supported locales
const (
	LangEN = "en"
	LangFA = "fa"
	LangDE = "de"
)

// Locales lists the supported locales, default first.
var Locales = []string{LangEN, LangFA, LangDE}

// IsLocale reports whether s is a supported locale.
func IsLocale(s string) bool {
	for _, l := range Locales {
		if l == s {
			return true
		}
	}
	return false
}

// NormalizeLocale maps an arbitrary locale value to a supported one,
// falling back to the default locale.
func NormalizeLocale(s string) string {
	if IsLocale(s) {
		return s
	}
	return LangEN
}
