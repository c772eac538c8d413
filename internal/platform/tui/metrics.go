package tui

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Metrics tracks server-wide game activity. A nil *Metrics is valid and
// records nothing, which is what local play uses.
type Metrics struct {
	registry     *prometheus.Registry
	sessions     prometheus.Gauge
	gamesStarted prometheus.Counter
	gamesOver    *prometheus.CounterVec
	foodEaten    prometheus.Counter
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gridsnake",
			Name:      "active_sessions",
			Help:      "Number of connected SSH sessions.",
		}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridsnake",
			Name:      "games_started_total",
			Help:      "Games started or restarted.",
		}),
		gamesOver: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridsnake",
			Name:      "games_over_total",
			Help:      "Games that ended, by outcome.",
		}, []string{"outcome"}),
		foodEaten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridsnake",
			Name:      "food_eaten_total",
			Help:      "Food consumed across all games.",
		}),
	}
	m.registry.MustRegister(m.sessions, m.gamesStarted, m.gamesOver, m.foodEaten)
	return m
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessions.Inc()
}

func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.sessions.Dec()
}

func (m *Metrics) GameStarted() {
	if m == nil {
		return
	}
	m.gamesStarted.Inc()
}

func (m *Metrics) GameOver(outcome snake.Outcome) {
	if m == nil {
		return
	}
	m.gamesOver.WithLabelValues(outcome.String()).Inc()
}

func (m *Metrics) FoodEaten(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.foodEaten.Add(float64(n))
}
