// Package main calcfin API
// @title calcfin API
// @version 1.0
// @description Quick arithmetic with history, VAT add/remove and EUR/USD conversion
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/calcfin/docs"
	"github.com/DjordjeVuckovic/calcfin/internal/api/router"
	"github.com/DjordjeVuckovic/calcfin/internal/api/server"
	"github.com/DjordjeVuckovic/calcfin/internal/fx"
	"github.com/DjordjeVuckovic/calcfin/internal/quickcalc"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/calcfin/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewCompositeHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "calcfin API is running")
	})

	backend, err := factory.NewHistoryBackend(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history store", "error", err)
		os.Exit(1)
	}
	healthChecker.Add(backend.Health)

	formatter, err := quickcalc.NewFormatter(cfg.App.Locale)
	if err != nil {
		slog.Error("Failed to create number formatter", "locale", cfg.App.Locale, "error", err)
		os.Exit(1)
	}
	calculator := quickcalc.NewCalculator(backend.Store,
		quickcalc.WithFormatter(formatter),
		quickcalc.WithMaxLength(cfg.App.Calc.MaxExpressionLength),
	)

	rates, err := fx.NewFrankfurterClient(cfg.App.FX.BaseURL, fx.WithTimeout(cfg.App.FX.Timeout))
	if err != nil {
		slog.Error("Failed to create exchange rate client", "error", err)
		os.Exit(1)
	}
	fxService, err := fx.NewService(rates, cfg.App.FX.ManualRate)
	if err != nil {
		slog.Error("Failed to create exchange rate service", "error", err)
		os.Exit(1)
	}
	if cfg.App.FX.RefreshOnStart {
		// failure leaves the manual rate in place
		_, _ = fxService.Refresh(s.Context())
	}

	router.NewCalcRouter(s.Echo, calculator).Bind()
	router.NewVATRouter(s.Echo, cfg.App.VAT.Presets, cfg.App.VAT.DefaultRate).Bind()
	router.NewFXRouter(s.Echo, fxService).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	backend.Close()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
