// Package telemetry records run metrics for stages and external commands.
//
// Metrics live in a per-run registry. When the user passes --metrics-file,
// the final counters are written in Prometheus exposition format, following
// the node_exporter textfile collector convention, so repeated runs can be
// scraped from cron or launchd.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder collects stage and command metrics for one run. A nil Recorder is
// valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	stageTotal     *prometheus.CounterVec
	stageDuration  *prometheus.HistogramVec
	commandTotal   *prometheus.CounterVec
	profileAppends *prometheus.CounterVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		stageTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "devsetup",
				Subsystem: "run",
				Name:      "stage_total",
				Help:      "Total number of stage executions by result",
			},
			[]string{"stage", "result"},
		),

		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "devsetup",
				Subsystem: "run",
				Name:      "stage_duration_seconds",
				Help:      "Duration of stage executions in seconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~68min
			},
			[]string{"stage"},
		),

		commandTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "devsetup",
				Subsystem: "command",
				Name:      "total",
				Help:      "Total number of external commands by install method and result",
			},
			[]string{"method", "result"},
		),

		profileAppends: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "devsetup",
				Subsystem: "run",
				Name:      "profile_appends_total",
				Help:      "Shell profile hook lines appended, by marker",
			},
			[]string{"marker"},
		),
	}

	r.registry.MustRegister(r.stageTotal, r.stageDuration, r.commandTotal, r.profileAppends)
	return r
}

// RecordStage records one stage execution.
func (r *Recorder) RecordStage(stage, result string, duration time.Duration) {
	if r == nil {
		return
	}
	r.stageTotal.WithLabelValues(stage, result).Inc()
	r.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordCommand records one external command execution.
func (r *Recorder) RecordCommand(method, result string) {
	if r == nil {
		return
	}
	r.commandTotal.WithLabelValues(method, result).Inc()
}

// RecordProfileAppend records a shell profile hook that was written.
func (r *Recorder) RecordProfileAppend(marker string) {
	if r == nil {
		return
	}
	r.profileAppends.WithLabelValues(marker).Inc()
}

// WriteTextfile writes the collected metrics to path in exposition format.
// The file is written to a temp name first and renamed, so a collector never
// reads a partial file.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}

	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	enc := expfmt.NewEncoder(tmp, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			tmp.Close() //nolint:errcheck
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close metrics file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
