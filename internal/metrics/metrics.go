// Package metrics records build statistics with Prometheus.
//
// A nil *Recorder is valid and discards everything, so one-shot builds
// can skip metrics entirely.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Page kinds used as the "kind" label.
const (
	KindContent     = "content"
	KindMarkdown    = "markdown"
	KindPlaceholder = "placeholder"
)

// Recorder holds the generator's collectors.
type Recorder struct {
	pages         *prom.CounterVec
	builds        *prom.CounterVec
	buildDuration prom.Histogram
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prom.Registerer) *Recorder {
	r := &Recorder{
		pages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "wikigen",
			Name:      "pages_rendered_total",
			Help:      "Pages written, by body kind",
		}, []string{"kind"}),
		builds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "wikigen",
			Name:      "builds_total",
			Help:      "Site builds by outcome",
		}, []string{"outcome"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "wikigen",
			Name:      "build_duration_seconds",
			Help:      "Total site build duration",
			Buckets:   prom.DefBuckets,
		}),
	}
	reg.MustRegister(r.pages, r.builds, r.buildDuration)
	return r
}

// PageRendered counts one written page.
func (r *Recorder) PageRendered(kind string) {
	if r == nil {
		return
	}
	r.pages.WithLabelValues(kind).Inc()
}

// BuildFinished records the duration and outcome of a whole build.
func (r *Recorder) BuildFinished(d time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.builds.WithLabelValues(outcome).Inc()
	r.buildDuration.Observe(d.Seconds())
}

// Handler serves the metrics gathered by reg.
func Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
