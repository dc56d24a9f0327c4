package site

var (
	defaultTheme = ThemeColors{
		Background: "#ffffff",
		Surface:    "#f7f7f8",
		Border:     "#e4e4e7",
		Primary:    "#111827",
		Secondary:  "#c2410c",
	}
	defaultFooter = FooterColors{
		Background: "#111827",
		Text:       "#f9fafb",
		Border:     "#1f2937",
	}
)

const (
	DefaultSiteName     = "My Store"
	DefaultFontFamily   = "Inter, sans-serif"
	DefaultBorderRadius = 12
)

func DefaultThemeColors() ThemeColors   { return defaultTheme }
func DefaultFooterColors() FooterColors { return defaultFooter }

// DefaultHomeLayout is the section list every fresh or broken document gets:
// hero, categories, featured, banner, trust. All visible.
func DefaultHomeLayout() []LayoutSection {
	types := []SectionType{SectionHero, SectionCategories, SectionFeatured, SectionBanner, SectionTrust}
	out := make([]LayoutSection, 0, len(types))
	for _, t := range types {
		s, _ := NewSection("default-"+string(t), t)
		out = append(out, s)
	}
	return out
}

// DefaultConfig is the canonical document created on first read.
func DefaultConfig() *SiteConfig {
	return &SiteConfig{
		SiteName:     DefaultSiteName,
		FontFamily:   DefaultFontFamily,
		NavbarLayout: NavbarClassic,
		BorderRadius: DefaultBorderRadius,
		ThemeColors:  defaultTheme,
		FooterColors: defaultFooter,
		HomeLayout:   DefaultHomeLayout(),
	}
}
