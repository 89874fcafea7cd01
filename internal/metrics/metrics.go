package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ROIEstimates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inman_roi_estimates_total",
		Help: "ROI estimates computed, by where the request came from",
	}, []string{"source"})

	DemoRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inman_demo_requests_total",
		Help: "Demo request form submissions by outcome",
	}, []string{"outcome"})

	FormRateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inman_form_rate_limited_total",
		Help: "Form submissions rejected by the per-client rate limiter",
	})
)
