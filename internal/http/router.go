package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/readersession"
)

// NewRouter creates the reader API router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Session middleware must load before the reader is resolved
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
		router.Use(cfg.Sessions.Identify())
	} else {
		router.Use(readersession.StaticReader(cfg.StaticReaderID))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	surahs := NewSurahsController(cfg.Chapters, cfg.Reader, cfg.Sessions)
	surahs.SetDefaultEdition(cfg.DefaultEdition)
	progressController := NewProgressController(cfg.Progress, cfg.Transfer, cfg.Chapters)
	statsController := NewStatsController(cfg.Progress, cfg.Pusher, cfg.Enqueuer)
	session := NewSessionController(cfg.Sessions, surahs.defaultEdition)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)

	api := router.Group("/api")

	// Text
	api.GET("/editions", ListEditions)
	api.GET("/surahs", surahs.ListSurahs)
	api.GET("/surahs/:number", surahs.GetSurah)
	api.GET("/surahs/:number/read", surahs.Read)
	api.POST("/surahs/:number/page", surahs.ChangePage)
	api.GET("/sections", ListSections)
	api.GET("/sections/:number", GetSection)

	// Progress. Static segments are registered before the parameterised ones.
	api.GET("/progress", progressController.ListProgress)
	api.POST("/progress", progressController.SaveProgress)
	api.GET("/progress/export", progressController.Export)
	api.POST("/progress/import", progressController.Import)
	api.GET("/progress/report.xlsx", progressController.Report)
	api.GET("/progress/:number/:edition", progressController.GetProgress)
	api.DELETE("/progress/:number/:edition", progressController.DeleteProgress)

	// Stats
	api.GET("/stats", statsController.GetStats)
	api.POST("/stats/push", statsController.PushStats)

	// Session
	api.GET("/session", session.GetSession)
	api.PUT("/session/edition", session.SetEdition)

	if cfg.Tasks != nil {
		tasksController := NewTasksController(cfg.Tasks)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
