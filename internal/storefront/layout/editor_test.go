package layout

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-app/internal/domain/site"
)

func frozenClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time { return t }
}

func ids(sections []site.LayoutSection) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.ID
	}
	return out
}

func TestIDGenerator_SameTick(t *testing.T) {
	g := NewIDGenerator(frozenClock())
	a, b := g.Next(), g.Next()
	assert.NotEqual(t, a, b)
	assert.Equal(t, "sec_1700000000000_1", a)
}

func TestAddSection_DefaultPayload(t *testing.T) {
	e := NewEditor(nil, NewIDGenerator(frozenClock()))
	s, err := e.AddSection(site.SectionCategories)
	require.NoError(t, err)
	assert.True(t, s.IsVisible)
	assert.Equal(t, 6, s.Data.(*site.CategoriesData).Limit)

	_, err = e.AddSection("carousel3d")
	assert.ErrorIs(t, err, site.ErrUnknownSectionType)
	assert.Equal(t, 1, e.Len())
}

func TestAddSection_SkipsExistingIDs(t *testing.T) {
	existing, _ := site.NewSection("sec_1700000000000_1", site.SectionSpacer)
	e := NewEditor([]site.LayoutSection{existing}, NewIDGenerator(frozenClock()))
	s, err := e.AddSection(site.SectionSpacer)
	require.NoError(t, err)
	assert.Equal(t, "sec_1700000000000_2", s.ID)
}

func TestMoveSection(t *testing.T) {
	e := NewEditor(site.DefaultHomeLayout(), nil)
	before := ids(e.Sections())

	require.NoError(t, e.MoveSection(0, Up))
	require.NoError(t, e.MoveSection(e.Len()-1, Down))
	assert.Equal(t, before, ids(e.Sections()))

	require.NoError(t, e.MoveSection(1, Up))
	got := ids(e.Sections())
	assert.Equal(t, before[1], got[0])
	assert.Equal(t, before[0], got[1])

	assert.ErrorIs(t, e.MoveSection(9, Down), ErrIndexOutOfRange)
}

func TestToggleVisibility_RenderSkipsHidden(t *testing.T) {
	e := NewEditor(site.DefaultHomeLayout(), nil)
	all := ids(e.Sections())
	require.NoError(t, e.ToggleVisibility(2))

	visible := Visible(e.Sections())
	require.Len(t, visible, 4)
	assert.Equal(t, []string{all[0], all[1], all[3], all[4]}, ids(visible))

	require.NoError(t, e.ToggleVisibility(2))
	assert.Len(t, Visible(e.Sections()), 5)
}

func TestDeleteSection_ClearsSelection(t *testing.T) {
	e := NewEditor(site.DefaultHomeLayout(), nil)
	target := e.Sections()[1].ID
	require.NoError(t, e.Select(target))

	require.NoError(t, e.DeleteSection(0))
	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, target, sel.ID)

	require.NoError(t, e.DeleteSection(0))
	_, ok = e.Selected()
	assert.False(t, ok)
	assert.Equal(t, 3, e.Len())
}

func TestUpdateSectionField_ByID(t *testing.T) {
	e := NewEditor(site.DefaultHomeLayout(), nil)
	hero := e.Sections()[0].ID
	require.NoError(t, e.MoveSection(0, Down))

	require.NoError(t, e.UpdateSectionField(hero, "title", "Winter sale"))
	assert.Equal(t, "Winter sale", e.Sections()[1].Data.(*site.HeroData).Title)

	assert.ErrorIs(t, e.UpdateSectionField("missing", "title", "x"), ErrSectionNotFound)
	assert.ErrorIs(t, e.UpdateSectionField(hero, "height", 3), site.ErrUnknownField)
}

func TestEditorWorksOnCopy(t *testing.T) {
	layout := site.DefaultHomeLayout()
	e := NewEditor(layout, nil)
	require.NoError(t, e.UpdateSectionField(layout[0].ID, "title", "Changed"))
	assert.Equal(t, "New season is here", layout[0].Data.(*site.HeroData).Title)

	u := e.Update()
	require.NotNil(t, u.HomeLayout)
	assert.Equal(t, "Changed", (*u.HomeLayout)[0].Data.(*site.HeroData).Title)
}

func TestRandomEdits_KeepIDsUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := NewEditor(site.DefaultHomeLayout(), NewIDGenerator(frozenClock()))
	types := site.SectionTypes()
	added, deleted := 0, 0

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			_, err := e.AddSection(types[rng.Intn(len(types))])
			require.NoError(t, err)
			added++
		case 1:
			if e.Len() > 0 {
				require.NoError(t, e.DeleteSection(rng.Intn(e.Len())))
				deleted++
			}
		case 2:
			if e.Len() > 0 {
				require.NoError(t, e.MoveSection(rng.Intn(e.Len()), Direction(rng.Intn(2))))
			}
		}
	}

	assert.Equal(t, 5+added-deleted, e.Len())
	seen := map[string]bool{}
	for _, id := range ids(e.Sections()) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
