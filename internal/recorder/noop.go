package recorder

import (
	"context"

	"TailSentinel/internal/model"
)

// NoopRecorder is a no-op implementation used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ context.Context, _ *model.ScanReport) error { return nil }
func (n *NoopRecorder) Close() error                                           { return nil }
