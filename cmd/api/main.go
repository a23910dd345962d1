package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/config"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/guide"
	httpapi "github.com/denisok6893-rgb/ai-pepper-matching/internal/http"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/logging"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/matching"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/metrics"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	w, err := matching.LoadWeightsFromFile(cfg.Matching.WeightsPath)
	if err != nil {
		logging.Warn().Err(err).Str("path", cfg.Matching.WeightsPath).Msg("using default weights")
	}

	items, err := storage.LoadItemsFromFile(cfg.Catalog.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("load catalog")
	}
	metrics.CatalogItems.Set(float64(len(items)))

	repo, closeRepo, err := openRepo(cfg.Catalog, items)
	if err != nil {
		logging.Fatal().Err(err).Msg("open catalog store")
	}
	defer closeRepo()

	products := guide.DefaultProducts()
	if cfg.Catalog.ProductsPath != "" {
		if products, err = guide.LoadProductCatalog(cfg.Catalog.ProductsPath); err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.ProductsPath).Msg("load product catalog")
		}
	}

	links := storage.DefaultLinks()
	if cfg.Catalog.LinksPath != "" {
		if links, err = storage.LoadLinkDirectory(cfg.Catalog.LinksPath); err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.LinksPath).Msg("load affiliate links")
		}
	}

	srv := httpapi.NewServer(matching.NewEngine(w), repo, httpapi.Options{
		Guides:          guide.NewGenerator(products),
		Links:           links,
		CORSOrigins:     cfg.Server.CORSOrigins,
		RateLimit:       cfg.Server.RateLimit,
		RateLimitWindow: cfg.Server.RateLimitWindow,
		CacheSize:       cfg.Cache.Size,
		CacheTTL:        cfg.Cache.TTL,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info().
			Str("address", cfg.Server.Address).
			Int("varieties", len(items)).
			Int("link_entries", links.Len()).
			Msg("API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("shutdown")
	}
}

// openRepo serves from memory unless a SQLite path is configured, in which
// case the database is reseeded from the file catalog first.
func openRepo(cfg config.CatalogConfig, items []domain.Item) (httpapi.ItemsRepo, func(), error) {
	if cfg.SQLitePath == "" {
		return &httpapi.MemoryItemsRepo{Items: items}, func() {}, nil
	}

	log := logging.With().Str("sqlite", cfg.SQLitePath).Logger()

	st, err := storage.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := st.EnsureSchema(); err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	if err := st.ReplaceAll(items); err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	n, err := st.CountItems()
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	log.Info().Int("rows", n).Msg("catalog seeded into sqlite")

	return &httpapi.SQLiteItemsRepo{Store: st}, func() { _ = st.Close() }, nil
}
