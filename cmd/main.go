package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"log-explorer-backend/config"
	_ "log-explorer-backend/docs"
	"log-explorer-backend/internal/controller"
	"log-explorer-backend/internal/filestore"
	"log-explorer-backend/internal/parser"
	"log-explorer-backend/internal/scheduler"
	"log-explorer-backend/internal/service"
	"log-explorer-backend/internal/store"
)

// @title           Log Explorer API
// @version         1.0
// @description     Parses application log files into structured entries and serves filtering, statistics and file browsing over them.

// @contact.name   API Support Team

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3001
// @BasePath  /
// @schemes   http https

// @tag.name         sessions
// @tag.description  Load a log file and browse its parsed entries

// @tag.name         files
// @tag.description  Files of the served logs directory

// @tag.name         health
// @tag.description  API health check operations

func main() {
	app := fx.New(
		// Core Dependencies
		fx.Provide(
			NewConfig,
		),
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			NewFileStoreManager,
			store.NewInMemorySessionStore,
			parser.NewMultilineParser,
			service.NewLogSessionService,
			service.NewFileQueryService,
			controller.NewLogController,
			controller.NewFileController,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second) // Timeout for startup
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second) // Timeout for graceful shutdown
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
	log.Info().Msg("Exiting.")
}

func NewConfig() (*config.Config, error) {
	return config.NewConfig()
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = 32 << 20

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	logController *controller.LogController,
	fileController *controller.FileController,
) {
	controller.RegisterFileRoutes(router, fileController)
	controller.RegisterLogRoutes(router, logController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Str("logs_directory", cfg.Logs.Directory).Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

// --- Factory Functions ---

func NewFileStoreManager(cfg *config.Config) filestore.Manager {
	return filestore.NewManager(cfg.Logs.Directory)
}

// --- Invoker Functions ---

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, sessionSvc service.LogSessionService) {
	scheduler.NewScheduler(lc, cfg, sessionSvc)
}
