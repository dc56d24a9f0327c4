package theme

import (
	"fmt"

	"storefront-app/internal/domain/site"
)

const (
	deepOffset  = -20
	lightOffset = 20
)

// AdjustBrightness adds offset to each RGB channel, clamping to 0..255, and
// returns the color as lowercase #rrggbb. Unparseable input is returned as is.
func AdjustBrightness(hex string, offset int) string {
	r, g, b, ok := site.ParseHexColor(hex)
	if !ok {
		return hex
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(r+offset), clamp(g+offset), clamp(b+offset))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
