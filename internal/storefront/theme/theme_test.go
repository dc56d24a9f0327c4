package theme

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-app/internal/domain/site"
)

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		in     string
		offset int
		want   string
	}{
		{"#102030", 20, "#243444"},
		{"#102030", -20, "#000c1c"},
		{"#fafafa", 20, "#ffffff"},
		{"#050505", -20, "#000000"},
		{"#ABC", 0, "#aabbcc"},
		{"#123456", 0, "#123456"},
		{"teal", 20, "teal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AdjustBrightness(tt.in, tt.offset), "%s %+d", tt.in, tt.offset)
	}
}

func TestAdjustBrightness_ZeroOffsetIdempotentAndClamped(t *testing.T) {
	for _, c := range []string{"#000000", "#ffffff", "#7f3a09", "#fff", "#0a0B0c"} {
		once := AdjustBrightness(c, 0)
		assert.Equal(t, once, AdjustBrightness(once, 0))

		for _, off := range []int{-300, -20, 20, 300} {
			r, g, b, ok := site.ParseHexColor(AdjustBrightness(c, off))
			require.True(t, ok)
			for _, v := range []int{r, g, b} {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 255)
			}
		}
	}
}

func TestCompute(t *testing.T) {
	cfg := site.DefaultConfig()
	cfg.ThemeColors.Primary = "#102030"
	cfg.BorderRadius = 8
	cfg.NavbarLayout = site.NavbarCentered

	vars := Compute(cfg)
	assert.Equal(t, "#102030", vars["--color-primary"])
	assert.Equal(t, "#000c1c", vars["--color-primary-deep"])
	assert.Equal(t, "#243444", vars["--color-primary-light"])
	assert.Equal(t, site.DefaultFooterColors().Text, vars["--footer-text"])
	assert.Equal(t, "8px", vars["--radius"])
	assert.Equal(t, "centered", vars["--navbar-layout"])
	assert.Len(t, vars, 5*3+3+3)
}

func TestCompute_FillsMissingTokens(t *testing.T) {
	vars := Compute(&site.SiteConfig{})
	for _, name := range vars.Names() {
		assert.NotEmpty(t, vars[name], name)
	}
}

func TestApplier_Idempotent(t *testing.T) {
	target := &MapTarget{}
	a := NewApplier(target, nil)
	cfg := site.DefaultConfig()

	changed, err := a.Apply(cfg)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = a.Apply(cfg.Clone())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, target.Applied())

	cfg.ThemeColors.Secondary = "#00ff00"
	changed, err = a.Apply(cfg)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "#00ff00", target.Get("--color-secondary"))
	assert.Equal(t, "#00ff00", a.Current()["--color-secondary"])
}

type failingTarget struct{}

func (failingTarget) SetVariables(Variables) error { return errors.New("detached") }

func TestApplier_FailureRetriesNextTime(t *testing.T) {
	a := NewApplier(failingTarget{}, nil)
	_, err := a.Apply(site.DefaultConfig())
	require.Error(t, err)
	assert.Empty(t, a.Current())
}

func TestCSSTarget(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSSTarget{W: &buf}.SetVariables(Variables{"--b": "2", "--a": "1"}))
	assert.Equal(t, ":root {\n  --a: 1;\n  --b: 2;\n}\n", buf.String())
}
