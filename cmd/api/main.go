package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/repo"
	"crowdfund/internal/auth"
	"crowdfund/internal/domain"
	"crowdfund/internal/http/handlers"
	httpapi "crowdfund/internal/http/httpapi"
	"crowdfund/internal/infra"
	"crowdfund/internal/infra/geoip"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		logger.Fatal().Err(err).Str("currency", cfg.Currency).Msg("invalid CURRENCY")
	}

	ctx := context.Background()

	var (
		users         domain.UserRepository
		campaigns     domain.CampaignRepository
		contributions domain.ContributionRepository
	)
	switch cfg.StoreDriver {
	case infra.StoreDriverMemory:
		store := memory.NewStore()
		users, campaigns, contributions = store.Users(), store.Campaigns(), store.Contributions()
		logger.Warn().Msg("using in-memory store; data is lost on restart")
	default:
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		runner := infra.NewSQLRunner(dbpool, logger)
		users = repo.NewUserRepository(runner)
		campaigns = repo.NewCampaignRepository(runner)
		contributions = repo.NewContributionRepository(runner)
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip disabled")
	}
	defer resolver.Close()

	app := handlers.NewApp(users, campaigns, contributions, auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL), logger)
	app.Currency = unit

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		RateLimitPerMin: cfg.RateLimitPerMin,
		CountryLookup:   resolver.Lookup(),
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("store", cfg.StoreDriver).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
