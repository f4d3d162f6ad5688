package http

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"food-donate/internal/storage"
)

func (h *Handler) serveAsset(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.writeAsset(c, name)
	}
}

func (h *Handler) serveStyles(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	name = path.Join("styles", name)
	if !strings.HasPrefix(name, "styles/") {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	h.writeAsset(c, name)
}

func (h *Handler) writeAsset(c *gin.Context, name string) {
	asset, err := h.assets.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrAssetNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.logger.WithError(err).WithField("asset", name).Error("open asset")
		c.AbortWithStatus(http.StatusBadGateway)
		return
	}
	defer asset.Body.Close()

	headers := map[string]string{
		"Cache-Control": "public, max-age=3600",
	}
	if asset.LastModified != nil && !asset.LastModified.IsZero() {
		headers["Last-Modified"] = asset.LastModified.UTC().Format(http.TimeFormat)
	}

	size := asset.Size
	if size <= 0 {
		size = -1
	}
	c.DataFromReader(http.StatusOK, size, asset.ContentType, asset.Body, headers)
}
