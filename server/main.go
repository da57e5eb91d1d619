package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-fx-widget/config"
	"go-fx-widget/convert"
	"go-fx-widget/domain"
	"go-fx-widget/http"
	"go-fx-widget/rates"
	"go-fx-widget/widget"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	table := rates.Reference()
	from, to := domain.Currency(cfg.Widget.DefaultFrom), domain.Currency(cfg.Widget.DefaultTo)
	if !table.Supports(from) || !table.Supports(to) {
		return fmt.Errorf("default pair %v-%v is not supported", from, to)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	convertService := convert.NewService(table, convert.DefaultPrecision())
	convertService = convert.NewInstrumentingService(convert.NewMetrics(reg), convertService)
	convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	w := widget.New(convertService, widget.WithLogger(log.With(logger, "component", "widget")))
	session := widget.NewSession(widget.NewState(from, to))

	handler := http.NewServer(w, session, table, http.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:         log.With(logger, "component", "http"),
	})

	srv := &nhttp.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr, "from", from, "to", to)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	level.Info(logger).Log("msg", "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// newLogger builds the root logger with timestamps, callers and level filtering
func newLogger(out io.Writer, cfg config.Log) (log.Logger, error) {
	w := log.NewSyncWriter(out)

	var logger log.Logger
	switch cfg.Format {
	case "json":
		logger = log.NewJSONLogger(w)
	default:
		logger = log.NewLogfmtLogger(w)
	}

	var allow level.Option
	switch cfg.Level {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
