package site

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize repairs a loaded document in place and returns it. It must run on
// every read path:
//   - an empty layout is replaced by DefaultHomeLayout
//   - blank or malformed color tokens fall back to their defaults
//   - unknown navbar layouts become classic, negative radius becomes 0
//   - empty or duplicate section ids are reassigned
func Normalize(c *SiteConfig) *SiteConfig {
	if c == nil {
		return DefaultConfig()
	}
	if len(c.HomeLayout) == 0 {
		c.HomeLayout = DefaultHomeLayout()
	}
	if strings.TrimSpace(c.SiteName) == "" {
		c.SiteName = DefaultSiteName
	}
	if strings.TrimSpace(c.FontFamily) == "" {
		c.FontFamily = DefaultFontFamily
	}
	switch c.NavbarLayout {
	case NavbarClassic, NavbarCentered, NavbarMinimal:
	default:
		c.NavbarLayout = NavbarClassic
	}
	if c.BorderRadius < 0 {
		c.BorderRadius = 0
	}

	fillColor(&c.ThemeColors.Background, defaultTheme.Background)
	fillColor(&c.ThemeColors.Surface, defaultTheme.Surface)
	fillColor(&c.ThemeColors.Border, defaultTheme.Border)
	fillColor(&c.ThemeColors.Primary, defaultTheme.Primary)
	fillColor(&c.ThemeColors.Secondary, defaultTheme.Secondary)
	fillColor(&c.FooterColors.Background, defaultFooter.Background)
	fillColor(&c.FooterColors.Text, defaultFooter.Text)
	fillColor(&c.FooterColors.Border, defaultFooter.Border)

	repairSectionIDs(c.HomeLayout)
	for i := range c.HomeLayout {
		if c.HomeLayout[i].Data == nil {
			c.HomeLayout[i].Data, _ = DecodeData(c.HomeLayout[i].Type, nil)
		}
	}
	return c
}

// DecodeConfig parses a stored or received document and normalizes it.
func DecodeConfig(raw []byte) (*SiteConfig, error) {
	var c SiteConfig
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode site config: %w", err)
		}
	}
	return Normalize(&c), nil
}

func fillColor(dst *string, fallback string) {
	v := strings.TrimSpace(*dst)
	if _, _, _, ok := ParseHexColor(v); !ok {
		*dst = fallback
		return
	}
	*dst = v
}

func repairSectionIDs(sections []LayoutSection) {
	seen := make(map[string]struct{}, len(sections))
	for i := range sections {
		id := strings.TrimSpace(sections[i].ID)
		if id == "" {
			id = fmt.Sprintf("section-%d", i)
		}
		base := id
		for n := 2; ; n++ {
			if _, dup := seen[id]; !dup {
				break
			}
			id = fmt.Sprintf("%s-%d", base, n)
		}
		seen[id] = struct{}{}
		sections[i].ID = id
	}
}

// ParseHexColor parses #rgb or #rrggbb.
func ParseHexColor(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	var v [3]int
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
