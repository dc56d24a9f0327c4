package site

import (
	"encoding/json"
	"time"
)

// SingletonID is the primary key of the only persisted configuration row.
const SingletonID uint = 1

const (
	NavbarClassic  = "classic"
	NavbarCentered = "centered"
	NavbarMinimal  = "minimal"
)

// SiteConfig is the storefront composition document. There is exactly one per
// deployment.
type SiteConfig struct {
	SiteName     string          `json:"siteName"`
	LogoURL      string          `json:"logoUrl"`
	FontFamily   string          `json:"fontFamily"`
	NavbarLayout string          `json:"navbarLayout"`
	BorderRadius int             `json:"borderRadius"`
	ThemeColors  ThemeColors     `json:"themeColors"`
	FooterColors FooterColors    `json:"footerColors"`
	HomeLayout   []LayoutSection `json:"homeLayout"`

	Content

	UpdatedAt time.Time `json:"updatedAt"`
}

type ThemeColors struct {
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Border     string `json:"border"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
}

type FooterColors struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// Record is the storage row. The document is kept as one jsonb value so the
// section payloads keep their type-specific shape.
type Record struct {
	ID        uint            `gorm:"primaryKey"`
	Document  json.RawMessage `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Record) TableName() string { return "site_configs" }

// UnmarshalJSON tolerates a homeLayout that is not an array; such a layout is
// dropped and later replaced by Normalize.
func (c *SiteConfig) UnmarshalJSON(b []byte) error {
	type alias SiteConfig
	var raw struct {
		alias
		HomeLayout json.RawMessage `json:"homeLayout"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = SiteConfig(raw.alias)
	c.HomeLayout = nil

	if len(raw.HomeLayout) == 0 || raw.HomeLayout[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw.HomeLayout, &items); err != nil {
		return nil
	}
	for _, item := range items {
		var s LayoutSection
		if err := json.Unmarshal(item, &s); err != nil || s.Type == "" {
			continue
		}
		c.HomeLayout = append(c.HomeLayout, s)
	}
	return nil
}

// Clone returns a deep copy, section payloads included.
func (c *SiteConfig) Clone() *SiteConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Content = c.Content.clone()
	out.HomeLayout = CloneSections(c.HomeLayout)
	return &out
}

// CloneSections deep-copies a section list.
func CloneSections(in []LayoutSection) []LayoutSection {
	if in == nil {
		return nil
	}
	out := make([]LayoutSection, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
