package dto

// SettingsByLocaleRequest represents a settings write keyed by locale.
// Each locale value is a partial document; absent locales stay untouched.
type SettingsByLocaleRequest struct {
	SettingsByLocale map[string]map[string]any `json:"settingsByLocale"`
}

// LegacySettingsRequest represents the older single-locale write shape
type LegacySettingsRequest struct {
	Locale   string         `json:"locale"`
	Settings map[string]any `json:"settings"`
}

// AppearanceRequest represents an appearance write. Pointer fields
// distinguish absent from zero-valued input.
type AppearanceRequest struct {
	Theme  *string  `json:"theme"`
	Radius *float64 `json:"radius"`
	Layout *string  `json:"layout"`
}
