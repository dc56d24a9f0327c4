package siteapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-app/internal/api/apierr"
	"storefront-app/internal/domain/site"
	"storefront-app/internal/repository"
)

// GET /site-config
func GetSiteConfig(repo repository.SiteConfigRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := repo.Get(c.Request.Context())
		if err != nil {
			apierr.Write(c, logger, err, "Failed to load site config")
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// PUT /site-config
func ReplaceSiteConfig(repo repository.SiteConfigRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			apierr.BadRequest(c, "Invalid body")
			return
		}
		if !json.Valid(raw) {
			apierr.BadRequest(c, "Malformed JSON")
			return
		}
		cfg, err := site.DecodeConfig(raw)
		if err != nil {
			apierr.BadRequest(c, err.Error())
			return
		}

		saved, err := repo.Replace(c.Request.Context(), cfg)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to save site config")
			return
		}
		logger.Info("Site config replaced", zap.Int("sections", len(saved.HomeLayout)))
		c.JSON(http.StatusOK, saved)
	}
}

// PATCH /site-config
func PatchSiteConfig(repo repository.SiteConfigRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			apierr.BadRequest(c, "Invalid body")
			return
		}
		u, err := site.ParseUpdate(raw)
		if err != nil {
			if errors.Is(err, site.ErrNotMergeable) {
				apierr.BadRequest(c, err.Error())
				return
			}
			apierr.BadRequest(c, "Malformed JSON")
			return
		}
		if u.IsEmpty() {
			apierr.BadRequest(c, "Nothing to update")
			return
		}

		saved, err := repo.Merge(c.Request.Context(), u)
		if err != nil {
			apierr.Write(c, logger, err, "Failed to save site config")
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}
