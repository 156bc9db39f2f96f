// Package metrics exposes quiz counters to Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flagquiz"

// Quiz records quiz events.
type Quiz struct {
	sessions     prometheus.Counter
	rounds       prometheus.Counter
	selections   *prometheus.CounterVec
	solved       *prometheus.CounterVec
	wrongGuesses prometheus.Histogram
}

// NewQuiz registers the quiz metrics with reg.
func NewQuiz(reg prometheus.Registerer) *Quiz {
	f := promauto.With(reg)

	return &Quiz{
		sessions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Quiz sessions created.",
		}),
		rounds: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Rounds generated and shown.",
		}),
		selections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Option picks by result.",
		}, []string{"result"}),
		solved: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_solved_total",
			Help:      "Solved rounds by whether they were scored.",
		}, []string{"scored"}),
		wrongGuesses: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wrong_guesses_per_round",
			Help:      "Wrong picks made before solving a round.",
			Buckets:   []float64{0, 1, 2, 3},
		}),
	}
}

func (q *Quiz) SessionStarted() {
	q.sessions.Inc()
}

func (q *Quiz) RoundStarted() {
	q.rounds.Inc()
}

func (q *Quiz) OptionSelected(correct bool) {
	result := "wrong"
	if correct {
		result = "correct"
	}
	q.selections.WithLabelValues(result).Inc()
}

func (q *Quiz) RoundSolved(scored bool, wrongGuesses int) {
	q.solved.WithLabelValues(strconv.FormatBool(scored)).Inc()
	q.wrongGuesses.Observe(float64(wrongGuesses))
}
