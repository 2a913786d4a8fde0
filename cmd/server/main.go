package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/robfig/cron/v3"

	"github.com/Lewis310/MyPortfolio/internal/api"
	"github.com/Lewis310/MyPortfolio/internal/config"
	"github.com/Lewis310/MyPortfolio/internal/database"
	"github.com/Lewis310/MyPortfolio/internal/marketdata"
	"github.com/Lewis310/MyPortfolio/internal/repository"
	"github.com/Lewis310/MyPortfolio/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Decode the fernet key for API-key-at-rest encryption, if configured
	var fernetKey *fernet.Key
	if cfg.MarketData.FernetKey != "" {
		fernetKey, err = fernet.DecodeKey(cfg.MarketData.FernetKey)
		if err != nil {
			log.Fatalf("Failed to decode FERNET_KEY: %v", err)
		}
	}

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db, fernetKey)

	// The limiter is shared across all symbol fetches; its counters persist
	// in the settings table across restarts.
	limiter := marketdata.NewLimiter(marketdata.DefaultMinInterval, cfg.MarketData.DailyBudget)
	limiter.WithStore(settingsRepo)

	provider := buildProvider(cfg, settingsRepo, priceRepo, limiter)

	// Create services
	systemService := service.NewSystemService(db, cfg.MarketData.Source)
	holdingService := service.NewHoldingService(holdingRepo)
	portfolioService := service.NewPortfolioService(holdingService, provider)
	refreshService := service.NewRefreshService(holdingService, provider, limiter)

	// Scheduled jobs: warm the price cache before market open, reset the
	// daily API budget at midnight.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("30 5 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := refreshService.RefreshPrices(ctx); err != nil {
			log.Printf("Scheduled price refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule price refresh: %v", err)
	}
	if _, err := scheduler.AddFunc("0 0 * * *", refreshService.ResetBudget); err != nil {
		log.Fatalf("Failed to schedule budget reset: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, holdingService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s (data source: %s)", cfg.Server.Addr, cfg.MarketData.Source)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// buildProvider assembles the price-history provider chain for the
// configured data source. Demo mode serves deterministic synthetic data;
// live mode wraps the Alpha Vantage client with synthetic fallback and the
// store-backed 1-hour cache.
func buildProvider(
	cfg *config.Config,
	settingsRepo *repository.SettingsRepository,
	priceRepo *repository.PriceRepository,
	limiter *marketdata.Limiter,
) marketdata.Provider {
	if cfg.MarketData.Source == config.SourceDemo {
		log.Println("Using demo data source: all series are synthetic")
		return marketdata.NewSyntheticProvider()
	}

	apiKey := cfg.MarketData.APIKey
	if apiKey != "" {
		// Keep the encrypted stored copy current with the environment.
		if err := settingsRepo.SetAPIKey(apiKey); err != nil {
			log.Printf("Could not store API key: %v", err)
		}
	} else {
		stored, err := settingsRepo.GetAPIKey()
		if err != nil {
			log.Printf("No API key available (%v), serving synthetic data", err)
			return marketdata.NewSyntheticProvider()
		}
		apiKey = stored
	}

	live := marketdata.NewAlphaVantageClient(apiKey, limiter)
	fallback := marketdata.NewFallbackProvider(live)
	return marketdata.NewCachedProvider(fallback, priceRepo, marketdata.DefaultCacheTTL)
}
