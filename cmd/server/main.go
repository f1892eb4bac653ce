package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"starnotary/internal/jwt_token"
	"starnotary/internal/ledger"
	"starnotary/internal/notary/cache"
	"starnotary/internal/notary/events"
	"starnotary/internal/notary/handler"
	"starnotary/internal/notary/metrics"
	"starnotary/internal/notary/service"
	"starnotary/internal/notary/store"
	"starnotary/internal/platform/config"
	"starnotary/internal/platform/httpserver"
	"starnotary/internal/platform/logger"
	"starnotary/internal/platform/middleware"
	redisplatform "starnotary/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := store.NewMemory()

	sinks := []events.Sink{events.NewMemorySink()}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := events.NewKafkaSink(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka sink unavailable", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
	}
	publisher := events.NewPublisher(sinks, events.WithLogger(log), events.WithAsyncBuffer(256))
	defer publisher.Close()

	archive, closeArchive, err := buildArchive(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("ledger archive unavailable", "error", err)
		os.Exit(1)
	}
	defer closeArchive()

	led := ledger.NewEmbedded(state, archive,
		ledger.WithLogger(log), ledger.WithPublisher(publisher))

	m := metrics.New()
	serviceOpts := []service.Option{service.WithLogger(log), service.WithMetrics(m)}

	redisClient, err := redisplatform.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		infoCache := cache.New(redisClient.Client, config.StarInfoCacheTTL)
		serviceOpts = append(serviceOpts, service.WithInfoCache(infoCache))
		log.Info("star info cache enabled")
	}

	registry, err := service.NewRegistry(led, state, serviceOpts...)
	if err != nil {
		log.Error("failed to build registry service", "error", err)
		os.Exit(1)
	}
	ownership, err := service.NewOwnership(led, state, serviceOpts...)
	if err != nil {
		log.Error("failed to build ownership service", "error", err)
		os.Exit(1)
	}
	approval, err := service.NewApproval(led, state, serviceOpts...)
	if err != nil {
		log.Error("failed to build approval service", "error", err)
		os.Exit(1)
	}
	market, err := service.NewMarket(led, state, serviceOpts...)
	if err != nil {
		log.Error("failed to build market service", "error", err)
		os.Exit(1)
	}

	var validator middleware.JWTValidator
	if cfg.Server.RequireAuth {
		jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, "starnotary", "starnotary-api")
		validator = jwttoken.NewJWTServiceAdapter(jwtService)
	}

	router := chi.NewRouter()
	handler.New(registry, ownership, approval, market, log, validator).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return led.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting starnotary", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// buildArchive selects the ledger entry archive: postgres when a DSN is
// configured, in-memory otherwise.
func buildArchive(ctx context.Context, dsn string) (ledger.EntryStore, func(), error) {
	if dsn == "" {
		return ledger.NewMemoryEntryStore(), func() {}, nil
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	archive := ledger.NewPostgres(db)
	if err := archive.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return archive, func() { db.Close() }, nil
}
