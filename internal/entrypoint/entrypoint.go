package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/database"
	"github.com/mrlokans/quranreader/internal/database/kv"
	"github.com/mrlokans/quranreader/internal/entities"
	http_controllers "github.com/mrlokans/quranreader/internal/http"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/progressapi"
	"github.com/mrlokans/quranreader/internal/quran"
	"github.com/mrlokans/quranreader/internal/reader"
	"github.com/mrlokans/quranreader/internal/readersession"
	"github.com/mrlokans/quranreader/internal/scheduler"
	"github.com/mrlokans/quranreader/internal/stats"
	"github.com/mrlokans/quranreader/internal/storage"
	"github.com/mrlokans/quranreader/internal/tasks"
	"github.com/mrlokans/quranreader/internal/transfer"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs router on addr until SIGINT or SIGTERM, then shuts down within
// the configured timeout.
func Serve(addr string, router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -9 cannot be caught, so only SIGINT and SIGTERM are handled
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run starts the reader server.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Quran Reader v%s", version)

	defaultEdition := entities.Edition(cfg.Session.DefaultEdition)
	if !defaultEdition.Valid() {
		log.Fatalf("Invalid default edition %q", cfg.Session.DefaultEdition)
	}

	deleteFallback, err := progress.ParseDeleteFallback(cfg.ProgressAPI.DeleteFallback)
	if err != nil {
		log.Fatalf("Invalid progress configuration: %v", err)
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Progress tiers: the backend API first, the local key-value table second
	local := progress.NewLocalStore(storage.NewDatabaseAdapter(kv.NewRepository(db.DB)))
	progressClient := progressapi.NewClient(cfg.ProgressAPI.URL, cfg.ProgressAPI.Timeout)
	repo := progress.NewRepository(progressClient, local)
	repo.SetDeleteFallback(deleteFallback)
	log.Printf("Progress backend: %s", cfg.ProgressAPI.URL)

	textClient := quran.NewClient(cfg.Quran.APIURL, cfg.Quran.Timeout)
	readerService := reader.NewService(textClient, repo)
	pusher := stats.NewPusher(local, progressClient)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessions, err := readersession.NewManager(sqlDB, cfg.Session)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.FromSettings(cfg.Tasks)

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewPushStatsQueue(pusher, taskCfg))
		readerService.SetProgressHook(tasks.PushStatsHook(taskClient))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	dispatch := scheduler.DirectDispatch(pusher)
	if taskClient != nil {
		dispatch = scheduler.QueueDispatch(taskClient)
	}
	statsSync := scheduler.NewStatsSyncScheduler(cfg.StatsSync, local, dispatch)
	syncCtx, syncCancel := context.WithCancel(context.Background())
	if err := statsSync.Start(syncCtx); err != nil {
		log.Fatalf("Failed to start stats sync scheduler: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Chapters:       textClient,
		Reader:         readerService,
		Progress:       repo,
		Transfer:       transfer.NewExporter(local),
		Pusher:         pusher,
		Database:       db,
		Sessions:       sessions,
		DefaultEdition: defaultEdition,
		Version:        version,
	}
	// Interface fields stay nil unless the queue exists
	if taskClient != nil {
		routerCfg.Enqueuer = taskClient
		routerCfg.Tasks = taskClient
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		statsSync.Stop()
		syncCancel()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port), router, cfg, onShutdown)
}
