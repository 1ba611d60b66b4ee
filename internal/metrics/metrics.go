// Package metrics exposes painting sessions as Prometheus metrics.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/easel/pkg/domain"
)

// Collector turns lifecycle events into Prometheus metrics.
type Collector struct {
	phases     *prometheus.CounterVec
	motions    *prometheus.CounterVec
	shortfalls prometheus.Counter
	duration   *prometheus.HistogramVec
	fraction   prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		phases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "easel_phase_entries_total",
				Help: "Total number of orchestrator phase entries",
			},
			[]string{"phase"},
		),
		motions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "easel_motions_total",
				Help: "Total number of planned motions by outcome",
			},
			[]string{"phase", "outcome"},
		),
		shortfalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "easel_planning_shortfalls_total",
			Help: "Motions aborted because the planner covered less than the whole path",
		}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "easel_motion_duration_seconds",
				Help:    "Duration of plan and execute for one motion",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"phase"},
		),
		fraction: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "easel_plan_fraction",
			Help:    "Completion fraction reported by the planner",
			Buckets: []float64{0.25, 0.5, 0.75, 0.9, 0.99, 1},
		}),
	}
	reg.MustRegister(c.phases, c.motions, c.shortfalls, c.duration, c.fraction)
	return c
}

// Hooks returns lifecycle hooks that feed the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPhaseEnter: func(_ context.Context, e *domain.PhaseEvent) {
			c.phases.WithLabelValues(string(e.Phase)).Inc()
		},
		OnMotion: func(_ context.Context, e *domain.MotionEvent) {
			phase := string(e.Phase)
			c.motions.WithLabelValues(phase, outcome(e.Err)).Inc()
			c.duration.WithLabelValues(phase).Observe(e.Duration.Seconds())
			c.fraction.Observe(e.Fraction)
			if errors.Is(e.Err, domain.ErrPlanningShortfall) {
				c.shortfalls.Inc()
			}
		},
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrPlanningShortfall):
		return "shortfall"
	}
	return "failed"
}
