package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionCategories   SectionType = "categories"
	SectionFeatured     SectionType = "featured"
	SectionBanner       SectionType = "banner"
	SectionTrust        SectionType = "trust"
	SectionTextImage    SectionType = "text_image"
	SectionVideo        SectionType = "video"
	SectionTestimonials SectionType = "testimonials"
	SectionSpacer       SectionType = "spacer"
	SectionSlider       SectionType = "slider"
	SectionPromo        SectionType = "promo"
)

var (
	ErrUnknownSectionType = errors.New("unknown section type")
	ErrUnknownField       = errors.New("field not in section schema")
	ErrInvalidValue       = errors.New("invalid value for section field")
)

// SectionData is the payload of one section. Its concrete type is fixed by the
// section type, see the registry below.
type SectionData interface {
	SectionType() SectionType
}

type HeroData struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"imageUrl"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
}

type CategoriesData struct {
	Title string `json:"title"`
	Limit int    `json:"limit"`
}

type FeaturedData struct {
	Title string `json:"title"`
	Limit int    `json:"limit"`
}

type BannerData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
}

type TrustItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type TrustData struct {
	Items []TrustItem `json:"items"`
}

type TextImageData struct {
	Title         string `json:"title"`
	Text          string `json:"text"`
	ImageURL      string `json:"imageUrl"`
	ImagePosition string `json:"imagePosition"` // left|right
}

type VideoData struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
	Autoplay bool   `json:"autoplay"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type TestimonialsData struct {
	Title string        `json:"title"`
	Items []Testimonial `json:"items"`
}

type SpacerData struct {
	Height int `json:"height"`
}

type Slide struct {
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Link     string `json:"link"`
}

type SliderData struct {
	Slides          []Slide `json:"slides"`
	IntervalSeconds int     `json:"intervalSeconds"`
}

type PromoData struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	Code       string `json:"code"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
}

func (HeroData) SectionType() SectionType         { return SectionHero }
func (CategoriesData) SectionType() SectionType   { return SectionCategories }
func (FeaturedData) SectionType() SectionType     { return SectionFeatured }
func (BannerData) SectionType() SectionType       { return SectionBanner }
func (TrustData) SectionType() SectionType        { return SectionTrust }
func (TextImageData) SectionType() SectionType    { return SectionTextImage }
func (VideoData) SectionType() SectionType        { return SectionVideo }
func (TestimonialsData) SectionType() SectionType { return SectionTestimonials }
func (SpacerData) SectionType() SectionType       { return SectionSpacer }
func (SliderData) SectionType() SectionType       { return SectionSlider }
func (PromoData) SectionType() SectionType        { return SectionPromo }

// RawData carries the payload of a section type this build does not know, so
// documents written by newer editors survive a round trip.
type RawData struct {
	Kind   SectionType
	Fields json.RawMessage
}

func (d RawData) SectionType() SectionType { return d.Kind }

func (d RawData) MarshalJSON() ([]byte, error) {
	if len(d.Fields) == 0 {
		return []byte("{}"), nil
	}
	return d.Fields, nil
}

var registry = map[SectionType]func() SectionData{
	SectionHero: func() SectionData {
		return &HeroData{
			Title:      "New season is here",
			Subtitle:   "Fresh arrivals every week",
			ButtonText: "Shop now",
			ButtonLink: "/products",
		}
	},
	SectionCategories: func() SectionData {
		return &CategoriesData{Title: "Shop by category", Limit: 6}
	},
	SectionFeatured: func() SectionData {
		return &FeaturedData{Title: "Featured products", Limit: 8}
	},
	SectionBanner: func() SectionData {
		return &BannerData{Title: "Limited offer", Subtitle: "While stocks last", Link: "/products"}
	},
	SectionTrust: func() SectionData {
		return &TrustData{Items: []TrustItem{
			{Icon: "truck", Title: "Fast delivery", Text: "Shipped within 48 hours"},
			{Icon: "shield", Title: "Secure payment", Text: "Pay on delivery"},
			{Icon: "refresh", Title: "Easy returns", Text: "14 days to change your mind"},
		}}
	},
	SectionTextImage: func() SectionData {
		return &TextImageData{Title: "Our story", Text: "Tell your customers who you are.", ImagePosition: "left"}
	},
	SectionVideo: func() SectionData {
		return &VideoData{Title: "Watch"}
	},
	SectionTestimonials: func() SectionData {
		return &TestimonialsData{Title: "What our customers say", Items: []Testimonial{}}
	},
	SectionSpacer: func() SectionData {
		return &SpacerData{Height: 40}
	},
	SectionSlider: func() SectionData {
		return &SliderData{Slides: []Slide{}, IntervalSeconds: 5}
	},
	SectionPromo: func() SectionData {
		return &PromoData{Title: "Special promotion", ButtonText: "Get it", ButtonLink: "/products"}
	},
}

// SectionTypes returns the registered section types in declaration order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionHero, SectionCategories, SectionFeatured, SectionBanner, SectionTrust,
		SectionTextImage, SectionVideo, SectionTestimonials, SectionSpacer, SectionSlider,
		SectionPromo,
	}
}

func IsKnownSectionType(t SectionType) bool {
	_, ok := registry[t]
	return ok
}

// DefaultData returns the default payload for a registered type.
func DefaultData(t SectionType) (SectionData, error) {
	ctor, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSectionType, t)
	}
	return ctor(), nil
}

// DecodeData decodes raw into the payload type of t. Keys missing from raw keep
// their default values. Unknown types are kept verbatim as RawData.
func DecodeData(t SectionType, raw json.RawMessage) (SectionData, error) {
	ctor, ok := registry[t]
	if !ok {
		fields := append(json.RawMessage(nil), raw...)
		if len(bytes.TrimSpace(fields)) == 0 || bytes.Equal(bytes.TrimSpace(fields), []byte("null")) {
			fields = nil
		}
		return RawData{Kind: t, Fields: fields}, nil
	}
	data := ctor()
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return data, nil
	}
	if err := json.Unmarshal(trimmed, data); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}
	return data, nil
}

// LayoutSection is one block of the homepage composition.
type LayoutSection struct {
	ID        string      `json:"id"`
	Type      SectionType `json:"type"`
	IsVisible bool        `json:"isVisible"`
	Data      SectionData `json:"data"`
}

// NewSection builds a visible section of type t with that type's default payload.
func NewSection(id string, t SectionType) (LayoutSection, error) {
	data, err := DefaultData(t)
	if err != nil {
		return LayoutSection{}, err
	}
	return LayoutSection{ID: id, Type: t, IsVisible: true, Data: data}, nil
}

func (s *LayoutSection) UnmarshalJSON(b []byte) error {
	var wire struct {
		ID        string          `json:"id"`
		Type      SectionType     `json:"type"`
		IsVisible *bool           `json:"isVisible"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	data, err := DecodeData(wire.Type, wire.Data)
	if err != nil {
		return err
	}
	s.ID = wire.ID
	s.Type = wire.Type
	s.IsVisible = wire.IsVisible == nil || *wire.IsVisible
	s.Data = data
	return nil
}

// Clone deep-copies the section.
func (s LayoutSection) Clone() LayoutSection {
	out := s
	if s.Data == nil {
		return out
	}
	raw, err := json.Marshal(s.Data)
	if err != nil {
		return out
	}
	if data, err := DecodeData(s.Type, raw); err == nil {
		out.Data = data
	}
	return out
}

// SetField merges one key into the payload. The key must belong to the type's
// schema and the value must decode into that field; on error the section is
// left unchanged.
func (s *LayoutSection) SetField(key string, value any) error {
	current, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", s.Type, err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(current, &fields); err != nil {
		return fmt.Errorf("encode %s payload: %w", s.Type, err)
	}

	_, known := registry[s.Type]
	if _, ok := fields[key]; known && !ok {
		return fmt.Errorf("%w: %q for %s", ErrUnknownField, key, s.Type)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidValue, key, err)
	}
	fields[key] = encoded
	merged, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidValue, key, err)
	}

	if !known {
		s.Data = RawData{Kind: s.Type, Fields: merged}
		return nil
	}

	next := registry[s.Type]()
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	if err := dec.Decode(next); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidValue, key, err)
	}
	s.Data = next
	return nil
}
