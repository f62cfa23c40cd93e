// Package metrics defines the Prometheus instrumentation for the recording
// submission pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles all Prometheus collectors for the service.
type Metrics struct {
	// Submission pipeline metrics
	SubmissionsTotal      prometheus.Counter
	SubmissionFailures    *prometheus.CounterVec
	NormalizeDuration     prometheus.Histogram
	UploadsTotal          prometheus.Counter
	UploadFailures        prometheus.Counter
	UploadDuration        prometheus.Histogram
	StagedCleanupFailures prometheus.Counter

	// Account metrics
	RegistrationsTotal prometheus.Counter
	LoginsTotal        prometheus.Counter
	LoginFailures      prometheus.Counter
}

// NewMetrics creates and registers all collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SubmissionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaani_submissions_total",
			Help: "Total number of recording submissions accepted",
		}),
		SubmissionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vaani_submission_failures_total",
			Help: "Total number of failed recording submissions by reason",
		}, []string{"reason"}),
		NormalizeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "vaani_normalize_duration_seconds",
			Help:    "Time spent normalizing one audio track",
			Buckets: prometheus.DefBuckets,
		}),
		UploadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaani_uploads_total",
			Help: "Total number of files uploaded to remote storage",
		}),
		UploadFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaani_upload_failures_total",
			Help: "Total number of failed remote storage uploads",
		}),
		UploadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "vaani_upload_duration_seconds",
			Help:    "Time spent uploading one file to remote storage",
			Buckets: prometheus.DefBuckets,
		}),
		StagedCleanupFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaani_staged_cleanup_failures_total",
			Help: "Total number of staged files that could not be deleted",
		}),
		RegistrationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaani_registrations_total",
			Help: "Total number of successful user registrations",
		}),
		LoginsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaani_logins_total",
			Help: "Total number of successful logins",
		}),
		LoginFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "vaani_login_failures_total",
			Help: "Total number of failed login attempts",
		}),
	}
}
