// Command storefront-preview loads the storefront from a running store API and
// prints the theme rule and the visible homepage outline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"storefront-app/internal/domain/site"
	"storefront-app/internal/infra/logger"
	"storefront-app/internal/storefront"
	"storefront-app/internal/storefront/theme"
)

func main() {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("LOG_LEVEL", "warn")

	lg := logger.New(v.GetString("LOG_LEVEL"), "")
	defer lg.Sync()

	s, err := storefront.New(storefront.Options{
		BaseURL:     v.GetString("API_URL"),
		Token:       v.GetString("API_TOKEN"),
		ThemeTarget: theme.CSSTarget{W: os.Stdout},
		Logger:      lg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.Start(ctx); errors.Is(err, storefront.ErrCatalogUnavailable) {
		lg.Warn("Catalog unavailable, previewing without products", zap.Error(err))
	} else if err != nil {
		lg.Error("Storefront unavailable", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Storefront unavailable: %v\n", err)
		os.Exit(1)
	}

	cfg, err := s.Config.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Storefront unavailable: %v\n", err)
		os.Exit(1)
	}
	sections, _ := s.HomeSections()

	fmt.Printf("\n%s (%d products)\n", cfg.SiteName, len(s.Catalog.List()))
	for i, sec := range sections {
		fmt.Printf("%2d. %-13s %s\n", i+1, sec.Type, describe(cfg, sec))
	}
	if hidden := len(cfg.HomeLayout) - len(sections); hidden > 0 {
		fmt.Printf("(%d hidden)\n", hidden)
	}
	if u, ok := s.User(); ok {
		fmt.Printf("\nSigned in as %s, can: %v\n", u.Username, s.Allowed())
	}
}

func describe(cfg *site.SiteConfig, sec site.LayoutSection) string {
	switch d := sec.Data.(type) {
	case *site.HeroData:
		if d.Title == "" {
			return cfg.Text("heroTitle")
		}
		return d.Title
	case *site.CategoriesData:
		return fmt.Sprintf("%s (up to %d)", d.Title, d.Limit)
	case *site.FeaturedData:
		return fmt.Sprintf("%s (up to %d)", d.Title, d.Limit)
	case *site.BannerData:
		return d.Title
	case *site.TrustData:
		return fmt.Sprintf("%d badges", len(d.Items))
	case *site.SpacerData:
		return fmt.Sprintf("%dpx", d.Height)
	case *site.SliderData:
		return fmt.Sprintf("%d slides every %ds", len(d.Slides), d.IntervalSeconds)
	case *site.PromoData:
		if d.Code != "" {
			return d.Title + " [" + d.Code + "]"
		}
		return d.Title
	case *site.TextImageData:
		return d.Title
	case *site.VideoData:
		return d.Title
	case *site.TestimonialsData:
		return d.Title
	default:
		return ""
	}
}
