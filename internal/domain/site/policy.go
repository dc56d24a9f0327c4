package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var ErrNotMergeable = errors.New("field cannot be updated partially")

// Update is a partial save. Nil fields are left untouched.
type Update struct {
	HomeLayout   *[]LayoutSection `json:"homeLayout,omitempty"`
	ThemeColors  *ThemeColors     `json:"themeColors,omitempty"`
	FooterColors *FooterColors    `json:"footerColors,omitempty"`
	LogoURL      *string          `json:"logoUrl,omitempty"`

	Content
}

// MergeableKeys lists the top-level keys a partial save may carry.
func MergeableKeys() []string {
	keys := append([]string{"homeLayout", "themeColors", "footerColors", "logoUrl"}, ContentKeys()...)
	sort.Strings(keys)
	return keys
}

// ParseUpdate decodes a partial save and rejects any key outside MergeableKeys.
func ParseUpdate(raw []byte) (Update, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Update{}, fmt.Errorf("decode update: %w", err)
	}
	allowed := make(map[string]struct{})
	for _, k := range MergeableKeys() {
		allowed[k] = struct{}{}
	}
	for k := range keys {
		if _, ok := allowed[k]; !ok {
			return Update{}, fmt.Errorf("%w: %q", ErrNotMergeable, k)
		}
	}

	var u Update
	if err := json.Unmarshal(raw, &u); err != nil {
		return Update{}, fmt.Errorf("decode update: %w", err)
	}
	return u, nil
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	if u.HomeLayout != nil || u.ThemeColors != nil || u.FooterColors != nil || u.LogoURL != nil {
		return false
	}
	empty := true
	u.Content.each(func(string, *string) { empty = false })
	return empty
}

// Apply merges u into c and normalizes the result. Color tokens merge field by
// field: a blank token in u leaves the current one.
func Apply(c *SiteConfig, u Update) *SiteConfig {
	if u.HomeLayout != nil {
		c.HomeLayout = CloneSections(*u.HomeLayout)
	}
	if t := u.ThemeColors; t != nil {
		mergeColor(&c.ThemeColors.Background, t.Background)
		mergeColor(&c.ThemeColors.Surface, t.Surface)
		mergeColor(&c.ThemeColors.Border, t.Border)
		mergeColor(&c.ThemeColors.Primary, t.Primary)
		mergeColor(&c.ThemeColors.Secondary, t.Secondary)
	}
	if f := u.FooterColors; f != nil {
		mergeColor(&c.FooterColors.Background, f.Background)
		mergeColor(&c.FooterColors.Text, f.Text)
		mergeColor(&c.FooterColors.Border, f.Border)
	}
	if u.LogoURL != nil {
		c.LogoURL = *u.LogoURL
	}
	c.Content.merge(u.Content)
	return Normalize(c)
}

func mergeColor(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
