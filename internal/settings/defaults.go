package settings

// DefaultMetadata returns a fresh copy of the default site metadata.
func DefaultMetadata() SiteMetadata {
	return SiteMetadata{
		Title:       "Next.js Starter Kit",
		Description: "Next.js CMS Core",
		Keywords:    []string{"nextjs", "cms", "starter kit"},
		Authors: []Author{
			{Name: "Nezam Aghda", URL: "https://github.com/snezamha"},
		},
	}
}

// DefaultFooter returns a fresh copy of the default dashboard footer.
func DefaultFooter() DashboardFooter {
	return DashboardFooter{
		Line1: "© 2026 Next.js Starter Kit",
		Line2: "Designed & Developed by: Nezam Aghda",
	}
}

// DefaultLocaleSettings returns a fully populated locale document built
// from the hard defaults.
func DefaultLocaleSettings() LocaleSettings {
	return LocaleSettings{
		Metadata:        DefaultMetadata(),
		DashboardFooter: DefaultFooter(),
	}
}
