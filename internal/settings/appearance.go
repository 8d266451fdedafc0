package settings

// Appearance holds the global dashboard appearance settings. Unlike the
// locale documents, appearance is a single record shared by all locales.
type Appearance struct {
	Theme  string  `json:"theme"`
	Radius float64 `json:"radius"`
	Layout string  `json:"layout"`
}

// Themes lists the accepted theme names.
var Themes = []string{
	"zinc", "slate", "stone", "gray", "neutral", "red",
	"rose", "orange", "green", "blue", "yellow", "violet",
}

// Radii lists the accepted corner radius values.
var Radii = []float64{0, 0.3, 0.5, 0.75, 1}

// Layouts lists the accepted dashboard layouts.
var Layouts = []string{"vertical", "horizontal"}

// DefaultAppearance returns the hard defaults used when no row exists or
// storage is not configured.
func DefaultAppearance() Appearance {
	return Appearance{Theme: "zinc", Radius: 0.5, Layout: "vertical"}
}

// ValidTheme reports whether s is an accepted theme name.
func ValidTheme(s string) bool {
	for _, t := range Themes {
		if t == s {
			return true
		}
	}
	return false
}

// ValidRadius reports whether r is an accepted radius value.
func ValidRadius(r float64) bool {
	for _, v := range Radii {
		if v == r {
			return true
		}
	}
	return false
}

// ValidLayout reports whether s is an accepted layout.
func ValidLayout(s string) bool {
	for _, l := range Layouts {
		if l == s {
			return true
		}
	}
	return false
}

// NormalizeAppearance coerces a stored row into a valid appearance,
// replacing each invalid field with its hard default.
func NormalizeAppearance(a Appearance) Appearance {
	def := DefaultAppearance()
	if !ValidTheme(a.Theme) {
		a.Theme = def.Theme
	}
	if !ValidRadius(a.Radius) {
		a.Radius = def.Radius
	}
	if !ValidLayout(a.Layout) {
		a.Layout = def.Layout
	}
	return a
}
