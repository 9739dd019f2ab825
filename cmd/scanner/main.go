// Package main runs the ledger scanner together with its reporting API.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/clock"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/aggregate"
	rediscache "github.com/goodnatureofminers/ledger7000-backend/internal/ledger/cache/redis"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/chains"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/repository/clickhouse"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/service"
	"github.com/goodnatureofminers/ledger7000-backend/internal/metrics"
	"github.com/goodnatureofminers/ledger7000-backend/internal/provider/cryptoapis"
	"github.com/goodnatureofminers/ledger7000-backend/internal/transport"
	"github.com/goodnatureofminers/ledger7000-backend/pkg/batcher"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var config struct {
	Targets     []string      `long:"target" env:"LEDGER_TARGETS" env-delim:"," required:"true" description:"watched address as chain:network:address (repeatable)"`
	Workers     int           `long:"workers" env:"LEDGER_WORKERS" description:"addresses scanned concurrently" default:"4"`
	Interval    time.Duration `long:"interval" env:"LEDGER_INTERVAL" description:"pause between scan cycles" default:"5m"`
	RetryMin    time.Duration `long:"retry-min" env:"LEDGER_RETRY_MIN" description:"first pause after a failed cycle" default:"30s"`
	RetryMax    time.Duration `long:"retry-max" env:"LEDGER_RETRY_MAX" description:"longest pause after failed cycles" default:"5m"`
	Addr        string        `long:"addr" env:"LEDGER_ADDR" description:"grpc addr" default:":8000"`
	RestAddr    string        `long:"rest-addr" env:"LEDGER_REST_ADDR" description:"rest addr" default:":8001"`
	RefreshRaws bool          `long:"refresh-raw" env:"LEDGER_REFRESH_RAW" description:"drop cached raw batches of the targets on start"`
	Operations  string        `long:"operations" env:"LEDGER_OPERATIONS" description:"operations export (JSON) compared with the ledger in --diff mode"`
	Diff        bool          `long:"diff" env:"LEDGER_DIFF" description:"scan the single target once, compare it with --operations and exit non-zero on mismatch"`

	Provider struct {
		BaseURL  string        `long:"base-url" env:"BASE_URL" description:"Crypto APIs base url" default:"https://rest.cryptoapis.io/v2"`
		APIKey   string        `long:"api-key" env:"API_KEY" description:"Crypto APIs key" required:"true"`
		PageSize int           `long:"page-size" env:"PAGE_SIZE" description:"items per listing page" default:"50"`
		MaxPages int           `long:"max-pages" env:"MAX_PAGES" description:"pages fetched per listing" default:"20"`
		RPS      int           `long:"rps" env:"RPS" description:"provider requests per second" default:"3"`
		Timeout  time.Duration `long:"timeout" env:"TIMEOUT" description:"provider request timeout" default:"10s"`
		Retries  int           `long:"retries" env:"RETRIES" description:"provider request retries" default:"3"`
	} `group:"provider" namespace:"provider" env-namespace:"LEDGER_PROVIDER"`

	Redis struct {
		Addr     string        `long:"addr" env:"ADDR" description:"redis addr, raw batches are not cached when empty"`
		Password string        `long:"password" env:"PASSWORD" description:"redis password"`
		DB       int           `long:"db" env:"DB" description:"redis db" default:"0"`
		PoolSize int           `long:"pool-size" env:"POOL_SIZE" description:"redis pool size" default:"10"`
		TTL      time.Duration `long:"ttl" env:"TTL" description:"raw batch ttl" default:"5m"`
	} `group:"redis" namespace:"redis" env-namespace:"LEDGER_REDIS"`

	Clickhouse struct {
		DSN           string        `long:"dsn" env:"DSN" description:"clickhouse dsn" default:"clickhouse://localhost:9000/default"`
		BatchSize     int           `long:"batch-size" env:"BATCH_SIZE" description:"operations per insert" default:"500"`
		BatchInterval time.Duration `long:"batch-interval" env:"BATCH_INTERVAL" description:"max delay before an insert" default:"2s"`
		BatchRPS      int           `long:"batch-rps" env:"BATCH_RPS" description:"inserts per second, 0 for no limit" default:"0"`
	} `group:"clickhouse" namespace:"clickhouse" env-namespace:"LEDGER_CLICKHOUSE"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	targets, err := parseTargets(config.Targets)
	if err != nil {
		logger.Fatal("Invalid targets", zap.Error(err))
	}

	provider, err := cryptoapis.NewClient(
		cryptoapis.Config{
			BaseURL:  config.Provider.BaseURL,
			APIKey:   config.Provider.APIKey,
			PageSize: config.Provider.PageSize,
			MaxPages: config.Provider.MaxPages,
			RPS:      config.Provider.RPS,
		},
		cryptoapis.NewHTTPClient(
			cryptoapis.WithTimeout(config.Provider.Timeout),
			cryptoapis.WithRetryMax(config.Provider.Retries),
		),
		func(chain model.Chain, network model.Network) cryptoapis.Metrics {
			return metrics.NewProviderClient(chain, network)
		},
	)
	if err != nil {
		logger.Fatal("Create provider client", zap.Error(err))
	}

	var cache service.RawCache
	if config.Redis.Addr != "" {
		rdb, err := rediscache.NewClient(ctx, rediscache.ClientConfig{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
			PoolSize: config.Redis.PoolSize,
		})
		if err != nil {
			logger.Fatal("Connect redis", zap.Error(err))
		}
		defer func() {
			_ = rdb.Close()
		}()

		rawCache := rediscache.NewRawCache(rdb, config.Redis.TTL, metrics.NewRawCache())
		if config.RefreshRaws {
			refreshRawCache(ctx, logger, rawCache, targets)
		}
		cache = rawCache
	}

	if config.Diff {
		report, err := runDiff(ctx, provider, cache, targets, config.Operations, logger)
		if err != nil {
			logger.Fatal("Compare operations", zap.Error(err))
		}
		if err := report.Err(); err != nil {
			logger.Fatal("Ledger differs from the export", zap.Error(err))
		}
		logger.Info("Ledger matches the export")
		return
	}

	repo, err := clickhouse.NewRepository(config.Clickhouse.DSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Create clickhouse repository", zap.Error(err))
	}
	defer func() {
		_ = repo.Close()
	}()

	writer := service.NewOperationWriter(repo, logger, batcher.Config{
		Size:     config.Clickhouse.BatchSize,
		Interval: config.Clickhouse.BatchInterval,
		RPS:      config.Clickhouse.BatchRPS,
	})
	writer.Start(ctx)
	defer writer.Stop()

	scanner := service.NewScanner(
		service.Config{
			Workers:  config.Workers,
			Interval: config.Interval,
			Backoff:  clock.Backoff{Min: config.RetryMin, Max: config.RetryMax},
		},
		provider,
		cache,
		writer,
		aggregate.NewRegistry(),
		metrics.NewScanner(),
		logger.Named("scanner"),
	)

	healthServer := health.NewServer()
	grpcServer := transport.NewGRPCServer(logger, healthServer)
	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	gw, err := transport.NewGateway(transport.NewLedgerHandler(scanner.Registry(), logger))
	if err != nil {
		logger.Fatal("Register ledger handler", zap.Error(err))
	}
	s := transport.NewHTTPServer(config.RestAddr, gw)
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()

	healthServer.SetServingStatus(transport.ScannerService, healthpb.HealthCheckResponse_SERVING)
	logger.Info("Starting scanner", zap.Int("targets", len(targets)))
	if err := scanner.Run(ctx, targets); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Scanner stopped", zap.Error(err))
	}
}

func refreshRawCache(ctx context.Context, logger *zap.Logger, cache *rediscache.RawCache, targets []model.LedgerKey) {
	for _, target := range targets {
		profile, err := chains.Lookup(target.Chain, target.Network)
		if err != nil {
			continue
		}
		if err := cache.Invalidate(ctx, target, profile.Family.Categories()); err != nil {
			logger.Warn("Failed to drop cached raw batches", zap.Stringer("target", target), zap.Error(err))
		}
	}
}
