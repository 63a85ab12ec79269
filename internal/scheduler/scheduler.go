package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"TailSentinel/internal/model"
	"TailSentinel/internal/notifier"
	"TailSentinel/internal/recorder"
	"TailSentinel/internal/scanner"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// sendRetries is the retry budget of each outgoing message.
const sendRetries = 3

// Broadcaster receives every finished report.
type Broadcaster interface {
	Broadcast(r *model.ScanReport)
}

// Scheduler runs scans on a cron schedule or on demand and delivers the results.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   *scanner.Runner
	Sinks    []notifier.Sink
	Recorder recorder.Recorder
	Feed     Broadcaster
	Ctx      context.Context

	running sync.Mutex
	mu      sync.RWMutex
	last    *model.ScanReport
}

// NewScheduler creates a new Scheduler. feed may be nil.
func NewScheduler(ctx context.Context, runner *scanner.Runner, sinks []notifier.Sink, rec recorder.Recorder, feed Broadcaster) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   runner,
		Sinks:    sinks,
		Recorder: rec,
		Feed:     feed,
		Ctx:      ctx,
	}
}

// Register adds the scan job.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	log.Info().Str("cron", scanCron).Msg("scan task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes one scan immediately and delivers it. It returns nil
// when another scan is already in progress.
func (s *Scheduler) RunNow(ctx context.Context) *model.ScanReport {
	if !s.running.TryLock() {
		log.Warn().Msg("scan already running, skipping")
		return nil
	}
	defer s.running.Unlock()

	report := s.Runner.Run(ctx, time.Now())

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	if s.Feed != nil {
		s.Feed.Broadcast(report)
	}
	for _, alert := range report.Alerts() {
		s.trySend(ctx, alert)
	}
	s.trySend(ctx, notifier.FormatRunSummary(report))
	if msg := notifier.FormatFailures(report); msg != "" {
		s.trySend(ctx, msg)
	}

	if err := s.Recorder.RecordRun(ctx, report); err != nil {
		log.Error().Err(err).Str("run_id", report.RunID).Msg("record run")
	}
	return report
}

// LastReport returns the most recent finished report, or nil.
func (s *Scheduler) LastReport() *model.ScanReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Scheduler) scanTask() {
	log.Info().Msg("running scheduled scan")
	s.RunNow(s.Ctx)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch normalizeCommand(command) {
	case "/scan":
		go s.RunNow(s.Ctx)
		return "🔍 Scan started. Results follow when it finishes."
	case "/status":
		return notifier.FormatRunSummary(s.LastReport())
	default:
		return "Available commands:\n• /scan - run a scan now\n• /status - last scan summary\n• /help - this message"
	}
}

// normalizeCommand strips arguments and a "@botname" suffix.
func normalizeCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return strings.ToLower(cmd)
}

// trySend delivers text to every sink. A failing sink does not stop the others.
func (s *Scheduler) trySend(ctx context.Context, text string) {
	for _, sink := range s.Sinks {
		if err := notifier.SendWithRetry(ctx, sink, text, sendRetries); err != nil {
			log.Error().Err(err).Str("sink", sink.Name()).Msg("send notification")
		}
	}
}
