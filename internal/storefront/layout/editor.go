// Package layout edits the ordered homepage sections of a site configuration.
package layout

import (
	"errors"
	"fmt"

	"storefront-app/internal/domain/site"
)

type Direction int

const (
	Up Direction = iota
	Down
)

var (
	ErrIndexOutOfRange = errors.New("section index out of range")
	ErrSectionNotFound = errors.New("section not found")
)

// Editor is an editing session over a copy of a layout. Nothing reaches the
// configuration until the caller saves Update().
type Editor struct {
	sections []site.LayoutSection
	selected string
	ids      *IDGenerator
}

// NewEditor starts a session on a copy of sections. A nil ids uses the wall
// clock.
func NewEditor(sections []site.LayoutSection, ids *IDGenerator) *Editor {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	return &Editor{sections: site.CloneSections(sections), ids: ids}
}

// Sections returns a copy of the current sequence.
func (e *Editor) Sections() []site.LayoutSection {
	return site.CloneSections(e.sections)
}

func (e *Editor) Len() int { return len(e.sections) }

// AddSection appends a section of type t with the type's default payload.
func (e *Editor) AddSection(t site.SectionType) (site.LayoutSection, error) {
	id := e.ids.Next()
	for e.indexOf(id) >= 0 {
		id = e.ids.Next()
	}
	s, err := site.NewSection(id, t)
	if err != nil {
		return site.LayoutSection{}, err
	}
	e.sections = append(e.sections, s)
	return s.Clone(), nil
}

// MoveSection swaps the section at index with its neighbour. Moving the first
// section up or the last one down does nothing.
func (e *Editor) MoveSection(index int, d Direction) error {
	if err := e.check(index); err != nil {
		return err
	}
	target := index - 1
	if d == Down {
		target = index + 1
	}
	if target < 0 || target >= len(e.sections) {
		return nil
	}
	e.sections[index], e.sections[target] = e.sections[target], e.sections[index]
	return nil
}

func (e *Editor) ToggleVisibility(index int) error {
	if err := e.check(index); err != nil {
		return err
	}
	e.sections[index].IsVisible = !e.sections[index].IsVisible
	return nil
}

// DeleteSection removes the section at index and clears the selection when it
// pointed at that section.
func (e *Editor) DeleteSection(index int) error {
	if err := e.check(index); err != nil {
		return err
	}
	if e.sections[index].ID == e.selected {
		e.selected = ""
	}
	e.sections = append(e.sections[:index], e.sections[index+1:]...)
	return nil
}

// UpdateSectionField sets one payload key on the section with the given id.
// Keys outside the type's schema and values of the wrong shape are rejected
// and leave the section unchanged.
func (e *Editor) UpdateSectionField(sectionID, key string, value any) error {
	i := e.indexOf(sectionID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, sectionID)
	}
	return e.sections[i].SetField(key, value)
}

// Select makes the section with id the active edit target.
func (e *Editor) Select(sectionID string) error {
	if e.indexOf(sectionID) < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, sectionID)
	}
	e.selected = sectionID
	return nil
}

func (e *Editor) ClearSelection() { e.selected = "" }

// Selected returns the active edit target, if any.
func (e *Editor) Selected() (site.LayoutSection, bool) {
	i := e.indexOf(e.selected)
	if e.selected == "" || i < 0 {
		return site.LayoutSection{}, false
	}
	return e.sections[i].Clone(), true
}

// Update is the partial save carrying the edited layout.
func (e *Editor) Update() site.Update {
	sections := e.Sections()
	return site.Update{HomeLayout: &sections}
}

func (e *Editor) check(index int) error {
	if index < 0 || index >= len(e.sections) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return nil
}

func (e *Editor) indexOf(id string) int {
	for i, s := range e.sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Visible returns the sections to render, in order, skipping hidden ones.
func Visible(sections []site.LayoutSection) []site.LayoutSection {
	out := make([]site.LayoutSection, 0, len(sections))
	for _, s := range sections {
		if s.IsVisible {
			out = append(out, s)
		}
	}
	return out
}
