package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FramesReadTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anpr_frames_read_total",
		Help: "Total number of frames read from the camera stream",
	})

	FramesRecognizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anpr_frames_recognized_total",
		Help: "Total number of frames handed to the plate recognizer",
	})

	DetectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anpr_detections_total",
		Help: "Total number of plate detections above the confidence threshold",
	})

	DuplicatesSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anpr_duplicates_suppressed_total",
		Help: "Total number of detections suppressed by the cool-down policy",
	})

	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anpr_submissions_total",
		Help: "Total number of vehicle-entry submissions, by outcome",
	}, []string{"outcome"})

	SubmissionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "anpr_submission_duration_seconds",
		Help:    "Duration of vehicle-entry submissions including evidence upload",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	SourceReconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anpr_source_reconnects_total",
		Help: "Total number of camera stream reconnects after a failed read",
	})

	RecognizerErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anpr_recognizer_errors_total",
		Help: "Total number of recognition engine failures, skipped as empty frames",
	})
)
