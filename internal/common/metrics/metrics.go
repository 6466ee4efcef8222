// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_scored_total",
			Help: "Assessments scored, by risk label and occupation",
		},
		[]string{"risk_label", "occupation"},
	)

	AssessmentOverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assessment_overall_score",
			Help:    "Distribution of overall risk scores",
			Buckets: []float64{20, 35, 55, 75, 100},
		},
	)

	// result is "hit", "miss" or "error".
	AssessmentCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_cache_lookups_total",
			Help: "Scoring result cache lookups by outcome",
		},
		[]string{"result"},
	)
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// RecordAssessment counts a freshly scored (not cached) assessment.
func RecordAssessment(riskLabel, occupationID string, overall int) {
	AssessmentsScored.WithLabelValues(riskLabel, occupationID).Inc()
	AssessmentOverallScore.Observe(float64(overall))
}
