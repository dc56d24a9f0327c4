package site

// Content holds the free-text copy shown around the page. Every field is
// optional; Text resolves an unset or blank field to its fallback.
type Content struct {
	HeroTitle      *string `json:"heroTitle,omitempty"`
	HeroSubtitle   *string `json:"heroSubtitle,omitempty"`
	AboutTitle     *string `json:"aboutTitle,omitempty"`
	AboutText      *string `json:"aboutText,omitempty"`
	ContactEmail   *string `json:"contactEmail,omitempty"`
	ContactPhone   *string `json:"contactPhone,omitempty"`
	ContactAddress *string `json:"contactAddress,omitempty"`
	InstagramURL   *string `json:"instagramUrl,omitempty"`
	FacebookURL    *string `json:"facebookUrl,omitempty"`
	TrustBadgeText *string `json:"trustBadgeText,omitempty"`
}

type contentField struct {
	key      string
	fallback string
	ref      func(*Content) **string
}

var contentFields = []contentField{
	{"heroTitle", "Discover the new collection", func(c *Content) **string { return &c.HeroTitle }},
	{"heroSubtitle", "Quality pieces, delivered to your door", func(c *Content) **string { return &c.HeroSubtitle }},
	{"aboutTitle", "About us", func(c *Content) **string { return &c.AboutTitle }},
	{"aboutText", "We are a small independent shop.", func(c *Content) **string { return &c.AboutText }},
	{"contactEmail", "", func(c *Content) **string { return &c.ContactEmail }},
	{"contactPhone", "", func(c *Content) **string { return &c.ContactPhone }},
	{"contactAddress", "", func(c *Content) **string { return &c.ContactAddress }},
	{"instagramUrl", "", func(c *Content) **string { return &c.InstagramURL }},
	{"facebookUrl", "", func(c *Content) **string { return &c.FacebookURL }},
	{"trustBadgeText", "Secure checkout", func(c *Content) **string { return &c.TrustBadgeText }},
}

// ContentKeys lists the wire keys of every content field.
func ContentKeys() []string {
	keys := make([]string, len(contentFields))
	for i, f := range contentFields {
		keys[i] = f.key
	}
	return keys
}

// Text returns the value for key, or its fallback when unset or blank.
// Unknown keys return "".
func (c *Content) Text(key string) string {
	for _, f := range contentFields {
		if f.key != key {
			continue
		}
		if v := *f.ref(c); v != nil && *v != "" {
			return *v
		}
		return f.fallback
	}
	return ""
}

// merge copies every set field of src into c.
func (c *Content) merge(src Content) {
	for _, f := range contentFields {
		if v := *f.ref(&src); v != nil {
			s := *v
			*f.ref(c) = &s
		}
	}
}

// each calls fn with a pointer to every set field.
func (c *Content) each(fn func(key string, v *string)) {
	for _, f := range contentFields {
		if v := *f.ref(c); v != nil {
			fn(f.key, v)
		}
	}
}

func (c Content) clone() Content {
	var out Content
	out.merge(c)
	return out
}
