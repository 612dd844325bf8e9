package backend

import (
	"strings"

	"github.com/gin-gonic/gin"

	apphttp "github.com/mrlokans/quranreader/internal/http"
)

// DefaultPrefix is where the API is mounted when RouterConfig.Prefix is empty.
const DefaultPrefix = "/api"

type RouterConfig struct {
	Progress ProgressStore
	Stats    StatsStore
	Database apphttp.Pinger
	Prefix   string
	Version  string
}

// NewRouter creates the backend API router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := apphttp.NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", apphttp.Ping)

	prefix := "/" + strings.Trim(cfg.Prefix, "/")
	if cfg.Prefix == "" {
		prefix = DefaultPrefix
	}
	api := router.Group(prefix)

	progress := NewProgressController(cfg.Progress)
	api.GET("/progress/:userId", progress.List)
	api.POST("/progress", progress.Save)
	api.DELETE("/progress/:userId/:chapter/:edition", progress.Delete)

	stats := NewStatsController(cfg.Stats)
	api.GET("/stats/:userId", stats.Get)
	api.POST("/stats", stats.Update)

	return router
}
