package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/apiserver/handler"
	"github.com/snezamha/cms-core/internal/apiserver/middleware"
	"github.com/snezamha/cms-core/internal/apiserver/service"
	"github.com/snezamha/cms-core/internal/common/config"
	"github.com/snezamha/cms-core/internal/i18n"
	"github.com/snezamha/cms-core/internal/identity"
	"github.com/snezamha/cms-core/pkg/logger"
	"github.com/snezamha/cms-core/pkg/version"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "CMS API Server",
		Long:  `CMS API Server provides the localized settings and user management endpoints for the dashboard`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	cfg, cfgPath, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	zapLogger.Info("loaded configuration", zap.String("path", cfgPath))

	i18n.SetDefaultLanguage(cfg.I18n.DefaultLocale)
	if err := i18n.InitTranslator(cfg.I18n.Path); err != nil {
		zapLogger.Warn("failed to load translations, falling back to message ids", zap.Error(err))
	}

	var db database.Database
	if cfg.Database.Configured() {
		db, err = database.NewDatabase(&cfg.Database)
		if err != nil {
			zapLogger.Fatal("failed to initialize database", zap.Error(err))
		}
		defer db.Close()
	} else {
		zapLogger.Warn("no database configured, serving defaults only")
	}

	provider, err := identity.NewProvider(&cfg.Identity)
	if err != nil {
		zapLogger.Fatal("failed to initialize identity provider", zap.Error(err))
	}

	zapLogger.Info("starting apiserver", zap.String("version", version.Get()))

	router := newRouter(cfg, db, provider, zapLogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exited")
}

func newRouter(cfg *config.APIServerConfig, db database.Database, provider identity.Provider, zapLogger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		middleware.RecoveryMiddleware(zapLogger),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(zapLogger),
		middleware.LanguageMiddleware(),
		middleware.AuthMiddleware(provider, zapLogger),
	)

	sync := service.NewSyncService(db, zapLogger)

	settingsGeneral := handler.NewSettingsGeneral(db, sync, zapLogger)
	appearance := handler.NewAppearance(db, sync, zapLogger)
	footer := handler.NewDashboardFooter(db, sync, zapLogger)
	metadata := handler.NewMetadata(db, sync, zapLogger)
	me := handler.NewMe(db, sync, zapLogger)
	users := handler.NewUsers(db, sync, provider, zapLogger)
	info := handler.NewServiceInfoHandler()

	router.GET("/health", info.HandleHealth)
	router.GET("/api/service-info", info.HandleServiceInfo)
	router.GET("/api/runtime-config", handler.HandleRuntimeConfig)

	api := router.Group("/api")
	{
		api.GET("/settings-general", settingsGeneral.Get)
		api.POST("/settings-general", settingsGeneral.Save)

		api.GET("/settings-appearance", appearance.Get)
		api.POST("/settings-appearance", appearance.Save)

		api.GET("/dashboard-footer", footer.Get)
		api.POST("/dashboard-footer", footer.Save)

		api.GET("/metadata", metadata.Get)
		api.POST("/metadata", metadata.Save)

		api.GET("/me", me.Get)

		admin := api.Group("/admin")
		{
			admin.GET("/users", users.List)
			admin.PATCH("/users/:id", users.UpdateRole)
			admin.DELETE("/users/:id", users.Delete)
		}
	}

	return router
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
