package league

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hoopsim/hoopsim/sim"
)

const namespace = "hoopsim"

// Recorder publishes league activity as Prometheus metrics. A nil Recorder
// records nothing.
type Recorder struct {
	games       prometheus.Counter
	days        prometheus.Counter
	trades      *prometheus.CounterVec
	signings    *prometheus.CounterVec
	retirements prometheus.Counter
	draftPicks  prometheus.Counter
	seasons     prometheus.Counter
	failures    *prometheus.CounterVec
	points      prometheus.Histogram
}

// NewRecorder builds the collectors and registers them on reg. A nil reg
// leaves them unregistered, which is enough for tests and embedding.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		games: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "games_simulated_total",
			Help: "Games simulated, regular season and playoffs.",
		}),
		days: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "days_advanced_total",
			Help: "Calendar days advanced.",
		}),
		trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "trades_total",
			Help: "Executed trades by mode.",
		}, []string{"mode"}),
		signings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "signings_total",
			Help: "Contracts signed or extended by source.",
		}, []string{"source"}),
		retirements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "retirements_total",
			Help: "Players retired.",
		}),
		draftPicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "draft_picks_total",
			Help: "Draft picks resolved.",
		}),
		seasons: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "seasons_completed_total",
			Help: "Seasons that crowned a champion.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "command_failures_total",
			Help: "Commands that returned a failed result, by command.",
		}, []string{"command"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "game_points",
			Help:    "Combined points scored in a game.",
			Buckets: prometheus.LinearBuckets(120, 20, 10),
		}),
	}
	if reg == nil {
		return r, nil
	}
	for _, c := range []prometheus.Collector{
		r.games, r.days, r.trades, r.signings, r.retirements, r.draftPicks, r.seasons, r.failures, r.points,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) recordGame(res *sim.GameResult) {
	if r == nil {
		return
	}
	r.games.Inc()
	r.points.Observe(float64(res.HomeScore + res.AwayScore))
}

func (r *Recorder) recordDay() {
	if r == nil {
		return
	}
	r.days.Inc()
}

func (r *Recorder) recordTrade(mode string) {
	if r == nil {
		return
	}
	r.trades.WithLabelValues(mode).Inc()
}

func (r *Recorder) recordSignings(source string, n int) {
	if r == nil || n == 0 {
		return
	}
	r.signings.WithLabelValues(source).Add(float64(n))
}

func (r *Recorder) recordRetirements(n int) {
	if r == nil {
		return
	}
	r.retirements.Add(float64(n))
}

func (r *Recorder) recordDraftPick() {
	if r == nil {
		return
	}
	r.draftPicks.Inc()
}

func (r *Recorder) recordSeason() {
	if r == nil {
		return
	}
	r.seasons.Inc()
}

func (r *Recorder) recordFailure(command string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(command).Inc()
}
