// Package main Sitewide Search API
// @title Sitewide Search API
// @version 1.0
// @description Sitewide full-text search and search term suggestions over the cancer.gov Elasticsearch indices
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/sitewide-search/docs"
	"github.com/DjordjeVuckovic/sitewide-search/internal/router"
	"github.com/DjordjeVuckovic/sitewide-search/internal/server"
	"github.com/DjordjeVuckovic/sitewide-search/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/sitewide-search/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	services, err := factory.NewServices(cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create query services", "error", err)
		os.Exit(1)
		return
	}

	healthChecker := pkgserver.NewCompositeHealthChecker(
		pkgserver.NamedHealthChecker{Name: "search", Checker: services.Search},
		pkgserver.NamedHealthChecker{Name: "autosuggest", Checker: services.Autosuggest},
	)

	s := server.New(&cfg.Server, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics().
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Sitewide Search API is running")
	})

	router.NewSearchRouter(s.Echo, services.Search).Bind()
	router.NewAutosuggestRouter(s.Echo, services.Autosuggest).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
