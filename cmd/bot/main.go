package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TailSentinel/internal/collector"
	"TailSentinel/internal/config"
	"TailSentinel/internal/notifier"
	"TailSentinel/internal/recorder"
	"TailSentinel/internal/scanner"
	"TailSentinel/internal/scheduler"
	"TailSentinel/internal/strategy"
	"TailSentinel/internal/stream"
	"TailSentinel/internal/universe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("TailSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, keeping info")
	}

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init fetcher
	client := collector.NewClient(collector.ClientOptions{
		Timeout:        time.Duration(cfg.DataSource.TimeoutSec) * time.Second,
		RequestsPerSec: cfg.DataSource.RequestsPerSec,
		Proxy:          cfg.Proxy,
	})
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "rest" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, client)
	} else {
		fetcher = collector.NewYahooFetcher(client)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	col := collector.NewCollector(fetcher, cfg.DataSource.DailyDays, cfg.DataSource.WeeklyWeeks)

	symbols := universe.Build(universe.Options{
		Nasdaq100: *cfg.Universe.Nasdaq100,
		SP500:     *cfg.Universe.SP500,
		Others:    *cfg.Universe.Others,
		Extra:     cfg.Universe.Extra,
		Exclude:   cfg.Universe.Exclude,
	})
	if len(symbols) == 0 {
		log.Fatal().Msg("ticker universe is empty")
	}
	log.Info().Int("tickers", len(symbols)).Msg("universe built")

	runner := scanner.NewRunner(col, symbols, thresholds(cfg))
	runner.Workers = cfg.Scan.Workers

	rec := openRecorder(ctx, cfg)
	defer rec.Close()

	// Sinks: stdout always, Telegram when configured
	sinks := []notifier.Sink{notifier.NewConsoleSink(os.Stdout)}
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn, err = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, "")
		if err != nil {
			log.Error().Err(err).Msg("telegram disabled")
		} else {
			sinks = append(sinks, tn)
		}
	}

	var hub *stream.Hub
	var feed scheduler.Broadcaster
	if cfg.Stream.Addr != "" {
		hub = stream.NewHub()
		feed = hub
	}

	sched := scheduler.NewScheduler(ctx, runner, sinks, rec, feed)

	if os.Getenv("RUN_ONCE") == "true" {
		log.Info().Msg("RUN_ONCE enabled, scanning once and exiting")
		sched.RunNow(ctx)
		return
	}

	if hub != nil {
		srv := &http.Server{Addr: cfg.Stream.Addr, Handler: hub.Handler(), ReadHeaderTimeout: 10 * time.Second}
		go func() {
			log.Info().Str("addr", cfg.Stream.Addr).Msg("stream server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("stream server")
			}
		}()
		defer func() {
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil && cfg.Telegram.Polling {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, scanning now")
		go sched.RunNow(ctx)
	}

	log.Info().Msg("TailSentinel is running. Press Ctrl+C to stop.")
	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping...")
}

func thresholds(cfg *config.Config) strategy.Thresholds {
	return strategy.Thresholds{
		TailRatio:        cfg.Detection.TailRatioThreshold,
		MinBodySize:      *cfg.Detection.MinBodySize,
		VolumeMultiplier: *cfg.Detection.VolumeMultiplier,
		LookbackDays:     cfg.Detection.LookbackDays,
		ComparisonDays:   cfg.Detection.ComparisonDays,
	}
}

// openRecorder prefers Postgres, then SQLite, and falls back to a no-op recorder.
func openRecorder(ctx context.Context, cfg *config.Config) recorder.Recorder {
	if cfg.Database.PostgresURL != "" {
		pr, err := recorder.NewPostgresRecorder(ctx, cfg.Database.PostgresURL, recorder.DefaultPoolConfig())
		if err == nil {
			return pr
		}
		log.Warn().Err(err).Msg("init postgres recorder failed")
	}
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err == nil {
			return sr
		}
		log.Warn().Err(err).Msg("init sqlite recorder failed")
	}
	log.Warn().Msg("run telemetry disabled, using noop recorder")
	return recorder.NewNoopRecorder()
}
