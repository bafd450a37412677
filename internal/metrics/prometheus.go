package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// IdeasGenerated counts generated game ideas
	IdeasGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gamespark_ideas_generated_total",
			Help: "Total number of game ideas generated",
		},
	)

	// AnalysisCount counts uniqueness analyses by verdict
	AnalysisCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamespark_uniqueness_analyses_total",
			Help: "Total number of uniqueness analyses",
		},
		[]string{"verdict"},
	)

	// AnalysisDuration measures uniqueness analysis duration
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "gamespark_uniqueness_analysis_duration_seconds",
			Help: "Uniqueness analysis duration in seconds",
		},
	)

	// EnhancementsApplied counts enhancement strings merged into ideas
	EnhancementsApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gamespark_enhancements_applied_total",
			Help: "Total number of enhancement suggestions merged into ideas",
		},
	)

	// StreamIngested counts ideas ingested from the Redis stream
	StreamIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamespark_stream_ingested_total",
			Help: "Total number of idea submissions ingested from the stream",
		},
		[]string{"status"},
	)
)

// InitPrometheus registers all collectors
func InitPrometheus() {
	prometheus.MustRegister(IdeasGenerated)
	prometheus.MustRegister(AnalysisCount)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(EnhancementsApplied)
	prometheus.MustRegister(StreamIngested)
}
