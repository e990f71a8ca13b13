package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sir_venger/questionnaire/internal/app/versionhttp"
	"github.com/sir_venger/questionnaire/internal/config"
	"github.com/sir_venger/questionnaire/internal/logger"
	"github.com/sir_venger/questionnaire/internal/metrics"
	"github.com/sir_venger/questionnaire/internal/repo/versions"
	"github.com/sir_venger/questionnaire/internal/usecase/versionsvc"
)

const shutdownTimeout = 15 * time.Second

// main поднимает HTTP-сервис версий анкеты и обеспечивает корректное завершение по сигналу.
func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err = run(cfg, log); err != nil {
		log.Error("questionnaire stopped with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	// Каталог версий создаётся один раз при старте.
	store, err := versions.Open(cfg.VersionsDir)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.MetricsOn() {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(registry)
	}

	var exporter versionsvc.Exporter
	if cfg.Export.Enabled {
		exporter = versionsvc.NewDirExporter(cfg.Export.Dir, cfg.Export.FallbackDir)
		log.Info("submit export enabled",
			zap.String("dir", cfg.Export.Dir),
			zap.String("fallback_dir", cfg.Export.FallbackDir))
	}

	svc := versionsvc.New(versionsvc.Deps{
		Store:    store,
		Exporter: exporter,
		Metrics:  m,
		Logger:   log,
		GCTTL:    cfg.GC.TTL,
	})

	// Настраиваем фоновый GC брошенных временных файлов.
	var stopGC func()
	if cfg.GC.TTL > 0 {
		stopGC = versionhttp.StartGC(svc, cfg.GC.Interval, log)
	} else {
		stopGC = func() {}
	}
	defer stopGC()

	handler := versionhttp.New(svc, versionhttp.Options{
		FrontendDir:  cfg.FrontendDir,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Metrics:      m,
		Logger:       log,
	})

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("questionnaire listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("versions_dir", cfg.VersionsDir),
			zap.String("frontend_dir", cfg.FrontendDir),
			zap.Duration("gc_ttl", cfg.GC.TTL),
			zap.Duration("gc_interval", cfg.GC.Interval))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT.
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		log.Info("questionnaire stopped")
		return nil
	})

	return g.Wait()
}
