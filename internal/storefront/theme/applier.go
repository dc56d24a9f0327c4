// Package theme derives render variables from the site configuration and
// pushes them to a rendering target.
package theme

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"storefront-app/internal/domain/site"
)

// Variables maps a CSS custom property name to its value.
type Variables map[string]string

// Names returns the variable names in sorted order.
func (v Variables) Names() []string {
	names := make([]string, 0, len(v))
	for k := range v {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (v Variables) equal(o Variables) bool {
	if len(v) != len(o) {
		return false
	}
	for k, val := range v {
		if ov, ok := o[k]; !ok || ov != val {
			return false
		}
	}
	return true
}

// Compute returns the variables for cfg. It is pure: equal configurations give
// equal variables.
func Compute(cfg *site.SiteConfig) Variables {
	cfg = site.Normalize(cfg.Clone())
	vars := Variables{
		"--radius":        strconv.Itoa(cfg.BorderRadius) + "px",
		"--font-family":   cfg.FontFamily,
		"--navbar-layout": cfg.NavbarLayout,
	}

	tc := cfg.ThemeColors
	for name, value := range map[string]string{
		"background": tc.Background,
		"surface":    tc.Surface,
		"border":     tc.Border,
		"primary":    tc.Primary,
		"secondary":  tc.Secondary,
	} {
		vars["--color-"+name] = value
		vars["--color-"+name+"-deep"] = AdjustBrightness(value, deepOffset)
		vars["--color-"+name+"-light"] = AdjustBrightness(value, lightOffset)
	}

	fc := cfg.FooterColors
	vars["--footer-background"] = fc.Background
	vars["--footer-text"] = fc.Text
	vars["--footer-border"] = fc.Border
	return vars
}

// Target is the rendering context variables are applied to.
type Target interface {
	SetVariables(vars Variables) error
}

// Applier applies a configuration's variables to a target, skipping the
// target entirely when nothing changed since the last apply.
type Applier struct {
	target Target
	logger *zap.Logger

	mu   sync.Mutex
	last Variables
}

func NewApplier(target Target, logger *zap.Logger) *Applier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applier{target: target, logger: logger}
}

// Apply reports whether the target was updated.
func (a *Applier) Apply(cfg *site.SiteConfig) (bool, error) {
	vars := Compute(cfg)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.last != nil && a.last.equal(vars) {
		return false, nil
	}
	if err := a.target.SetVariables(vars); err != nil {
		return false, fmt.Errorf("apply theme: %w", err)
	}
	a.last = vars
	a.logger.Debug("Theme applied", zap.Int("variables", len(vars)))
	return true, nil
}

// Current returns a copy of the last applied variables.
func (a *Applier) Current() Variables {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(Variables, len(a.last))
	for k, v := range a.last {
		out[k] = v
	}
	return out
}

// MapTarget keeps the applied variables in memory.
type MapTarget struct {
	mu      sync.Mutex
	vars    Variables
	applied int
}

func (t *MapTarget) SetVariables(vars Variables) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vars = make(Variables, len(vars))
	for k, v := range vars {
		t.vars[k] = v
	}
	t.applied++
	return nil
}

func (t *MapTarget) Get(name string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.vars[name]
}

// Applied counts SetVariables calls.
func (t *MapTarget) Applied() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.applied
}

// CSSTarget writes each applied set as a :root rule.
type CSSTarget struct {
	W io.Writer
}

func (t CSSTarget) SetVariables(vars Variables) error {
	if _, err := io.WriteString(t.W, ":root {\n"); err != nil {
		return err
	}
	for _, name := range vars.Names() {
		if _, err := fmt.Fprintf(t.W, "  %s: %s;\n", name, vars[name]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(t.W, "}\n")
	return err
}
