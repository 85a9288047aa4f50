package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vowsync/vowsync/internal/models"
)

// vendorCacheTTL bounds how long a search result may be served from
// Redis before hitting the store again.
const vendorCacheTTL = 60 * time.Second

func vendorCacheKey(query, location string) string {
	return "vendors:" + strings.ToLower(location) + ":" + strings.ToLower(query)
}

func (s *Server) searchVendors(c *gin.Context) {
	query := c.Query("query")
	location := c.Query("location")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	ctx := c.Request.Context()
	key := vendorCacheKey(query, location)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	vendors, err := s.store.SearchVendors(ctx, query, location)
	if err != nil {
		slog.Error("vendor search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search vendors"})
		return
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(vendors); err == nil {
			if err := s.cache.Set(ctx, key, payload, vendorCacheTTL).Err(); err != nil {
				slog.Warn("vendor cache write failed", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, vendors)
}
