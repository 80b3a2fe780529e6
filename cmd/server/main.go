package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"gatekit/internal/audit"
	auditkafka "gatekit/internal/audit/kafka"
	auditmemory "gatekit/internal/audit/store/memory"
	"gatekit/internal/authapi"
	claimstore "gatekit/internal/claims/store"
	"gatekit/internal/handler"
	handlermetrics "gatekit/internal/handler/metrics"
	"gatekit/internal/platform/config"
	"gatekit/internal/platform/httpserver"
	"gatekit/internal/platform/logger"
	"gatekit/internal/platform/metrics"
	platformredis "gatekit/internal/platform/redis"
	"gatekit/internal/session"
	"gatekit/internal/spi"
	httptransport "gatekit/internal/transport/http"
)

// main wires the decision backend client, the stores behind the SPI
// providers, and the HTTP server lifecycle. Endpoint semantics live in
// internal/handler; main only assembles.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := authapi.WithTracing(authapi.NewHTTPClient(cfg.Backend.BaseURL, cfg.Backend.AccessToken))

	sessions, closeSessions := buildSessionStore(cfg, log)
	defer closeSessions()

	claims, closeClaims := buildClaimProvider(cfg, log)
	defer closeClaims()

	emitter, closeAudit := buildAuditEmitter(ctx, cfg, log)
	defer closeAudit()

	h := handler.New(api, log, handlermetrics.New(), emitter)

	server := httptransport.NewServer(h, sessions, claims, log,
		httptransport.WithSessionTTL(cfg.SessionTTL),
	)
	router := server.Router(metrics.New())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting gatekit", "addr", cfg.Addr, "backend", cfg.Backend.BaseURL)

	var g errgroup.Group
	g.Go(func() error { return run(ctx, srv) })
	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// buildSessionStore prefers Redis and falls back to process memory when no
// Redis URL is configured.
func buildSessionStore(cfg config.Config, log *slog.Logger) (session.Store, func()) {
	if cfg.Redis.URL == "" {
		return session.NewInMemoryStore(), func() {}
	}
	client, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable, sessions stay in memory", "error", err)
		return session.NewInMemoryStore(), func() {}
	}
	return session.NewRedisStore(client.Client), func() {
		if err := client.Close(); err != nil {
			log.Error("redis close failed", "error", err)
		}
	}
}

// buildClaimProvider prefers Postgres and falls back to an empty claim source
// when no DSN is configured.
func buildClaimProvider(cfg config.Config, log *slog.Logger) (spi.ClaimProvider, func()) {
	if cfg.PostgresDSN == "" {
		return claimstore.NewProvider(claimstore.NewInMemoryStore(), log), func() {}
	}
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Error("postgres unavailable, claims stay in memory", "error", err)
		return claimstore.NewProvider(claimstore.NewInMemoryStore(), log), func() {}
	}
	return claimstore.NewProvider(claimstore.NewPostgres(db), log), func() {
		if err := db.Close(); err != nil {
			log.Error("postgres close failed", "error", err)
		}
	}
}

// buildAuditEmitter prefers Kafka and falls back to an in-memory audit log
// when no brokers are configured.
func buildAuditEmitter(ctx context.Context, cfg config.Config, log *slog.Logger) (audit.Emitter, func()) {
	var sink audit.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := auditkafka.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka unavailable, audit events stay in memory", "error", err)
			sink = auditmemory.New()
		} else {
			sink = kafkaSink
		}
	} else {
		sink = auditmemory.New()
	}

	publisher := audit.NewPublisher(sink, log)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Error("audit close failed", "error", err)
		}
	}
}
