package predict

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// resultRequestError labels submissions that ended in a RequestError.
const resultRequestError = "request_error"

var (
	predictRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "demodash",
			Subsystem: "predict",
			Name:      "requests_total",
			Help:      "Total number of predict submissions by interpreted result",
		},
		[]string{"result"},
	)

	predictDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "demodash",
			Subsystem: "predict",
			Name:      "duration_seconds",
			Help:      "Duration of predict calls to the remote demo in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(predictRequestsTotal, predictDuration)
}

func observe(result string, d time.Duration) {
	predictRequestsTotal.WithLabelValues(result).Inc()
	predictDuration.WithLabelValues(result).Observe(d.Seconds())
}
