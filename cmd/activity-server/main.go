// Command activity-server is the process bootstrap for the activity
// counter: it loads jsonnet configuration, wires the go-redis backing
// store, and serves both a gRPC health-checking endpoint and the HTTP
// pixel/health gateway.
package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redisext"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/reddit-archive/activity-service/pkg/activity"
	"github.com/reddit-archive/activity-service/pkg/clock"
	"github.com/reddit-archive/activity-service/pkg/config"
	"github.com/reddit-archive/activity-service/pkg/gatewayhttp"
	"github.com/reddit-archive/activity-service/pkg/metrics"
	"github.com/reddit-archive/activity-service/pkg/rng"
	"github.com/reddit-archive/activity-service/pkg/storeclient"
)

func main() {
	configPath := flag.String("config", "config.jsonnet", "path to the jsonnet configuration file")
	grpcAddress := flag.String("grpc-address", ":9090", "listen address for the gRPC health service")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("invalid redis.url", zap.Error(err))
	}
	poolSize := opts.PoolSize
	if cfg.Redis.MaxConnections > 0 {
		poolSize = cfg.Redis.MaxConnections
		opts.PoolSize = poolSize
	}
	if poolSize <= 0 {
		poolSize = 10
	}
	// Bound in-flight commands to the pool size and trip a breaker on
	// sustained backing-store failure, rather than letting callers pile
	// up waiting on exhausted connections.
	opts.Limiter = redisext.NewLimiter(poolSize)
	rdb := redis.NewClient(opts)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	store := storeclient.NewWithMetrics(rdb, m)

	sliceClock := activity.NewSliceClock(clock.System)
	counter, err := activity.NewCounter(sliceClock, cfg.Window())
	if err != nil {
		logger.Fatal("invalid activity.window", zap.Error(err))
	}

	cache := activity.NewCache(logger).WithMetrics(m)
	fuzzer := activity.NewFuzzer(cfg.Activity.FuzzThreshold, rng.NewFromTime()).WithMetrics(m)
	coordinator := activity.NewCoordinator(cache, counter, fuzzer)
	service := activity.NewService(store, counter, coordinator, m)

	grpcMetrics := grpc_prometheus.NewServerMetrics()
	grpcMetrics.EnableHandlingTimeHistogram()
	registry.MustRegister(grpcMetrics)

	go serveHTTP(cfg, logger, service, registry)
	serveGRPC(*grpcAddress, logger, service, grpcMetrics)
}

func serveHTTP(cfg config.Config, logger *zap.Logger, service *activity.Service, registry *prometheus.Registry) {
	gateway := gatewayhttp.NewGateway(service, logger)
	mux := gateway.Router()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	addr := cfg.HTTP.ListenAddress
	if addr == "" {
		addr = ":8080"
	}
	logger.Info("starting http gateway", zap.String("address", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("http gateway exited", zap.Error(err))
	}
}

// pollHealth periodically pings the backing store through service and
// reflects the result into the standard gRPC health-checking
// protocol's serving status for the whole server ("").
func pollHealth(healthSrv *health.Server, service *activity.Service, logger *zap.Logger) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := service.IsHealthy(ctx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			logger.Warn("health check failed", zap.Error(err))
		}
		healthSrv.SetServingStatus("", status)
	}
}

func serveGRPC(address string, logger *zap.Logger, service *activity.Service, grpcMetrics *grpc_prometheus.ServerMetrics) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("address", address), zap.Error(err))
	}

	srv := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMetrics.UnaryServerInterceptor()),
		grpc.StreamInterceptor(grpcMetrics.StreamServerInterceptor()),
	)
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	grpcMetrics.InitializeMetrics(srv)
	go pollHealth(healthSrv, service, logger)

	logger.Info("starting grpc server", zap.String("address", address))
	if err := srv.Serve(lis); err != nil {
		logger.Fatal("grpc server exited", zap.Error(err))
	}
}
