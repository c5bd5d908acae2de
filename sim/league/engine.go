// Package league is the orchestrator of a running league. An Engine owns one
// LeagueState exclusively and exposes the command set a front end issues:
// advancing days, contracts, trades, scouting, the draft and the season
// transition. Every command returns a Result and runs as a transaction, so a
// failed or aborted command leaves the snapshot exactly as it was.
package league

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/trace"
)

// Result is the (success, message) pair every command returns.
type Result struct {
	OK      bool
	Message string
}

func ok(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Options configures an Engine.
type Options struct {
	Seed    int64
	Trace   trace.TraceConfig
	Metrics *Recorder // nil disables metrics
}

// Engine drives one league. It is not safe for concurrent use.
type Engine struct {
	state   *sim.LeagueState
	cfg     *sim.Config
	rngs    *sim.PartitionedRNG
	trace   *trace.LeagueTrace
	metrics *Recorder
}

// New takes ownership of s, repairs it with Bootstrap and returns an engine
// ready for commands. A nil cfg uses sim.DefaultConfig.
// Panics if s is nil.
func New(s *sim.LeagueState, cfg *sim.Config, opts Options) *Engine {
	if s == nil {
		panic("league.New: nil LeagueState")
	}
	if cfg == nil {
		cfg = sim.DefaultConfig()
	}
	rngs := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
	e := &Engine{
		state:   s,
		cfg:     cfg,
		rngs:    rngs,
		trace:   trace.NewLeagueTrace(opts.Trace, rngs.ForSubsystem(sim.SubsystemIDs)),
		metrics: opts.Metrics,
	}
	for _, note := range Bootstrap(s, cfg, rngs.ForSubsystem(sim.SubsystemBootstrap)) {
		logrus.Warnf("bootstrap: %s", note)
	}
	return e
}

// State returns the live snapshot. Callers must treat it as read-only.
func (e *Engine) State() *sim.LeagueState { return e.state }

// Snapshot returns a deep copy of the league for persistence.
func (e *Engine) Snapshot() *sim.LeagueState { return e.state.Clone() }

// Config returns the engine configuration.
func (e *Engine) Config() *sim.Config { return e.cfg }

// Trace returns the transaction trace.
func (e *Engine) Trace() *trace.LeagueTrace { return e.trace }

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() sim.Phase { return e.state.Phase() }

func (e *Engine) rng(subsystem string) *rand.Rand {
	return e.rngs.ForSubsystem(subsystem)
}

// rollback aborts a multi-step command whose later step failed after an
// earlier one mutated the league. transact restores the state and returns the
// wrapped result.
type rollback Result

// transact runs fn against the live state. A failed result must come from a
// check made before any mutation, or be raised as a rollback. A panic is an
// unexpected fault. Either way the state and trace are restored from the
// copies taken on entry and the command fails.
func (e *Engine) transact(command string, fn func() Result) (res Result) {
	backup := e.state.Clone()
	mark := e.trace.Mark()
	defer func() {
		if r := recover(); r != nil {
			*e.state = *backup
			e.trace.Rewind(mark)
			if rb, isRollback := r.(rollback); isRollback {
				logrus.Warnf("%s rolled back: %s", command, rb.Message)
				res = Result(rb)
				res.OK = false
			} else {
				logrus.Errorf("%s aborted, league restored: %v", command, r)
				res = fail("%s aborted by an internal error", command)
			}
		}
		if !res.OK {
			e.metrics.recordFailure(command)
		}
	}()
	return fn()
}

// advanceDate moves the calendar date forward one day.
func (e *Engine) advanceDate() {
	d, err := time.Parse(sim.DateLayout, e.state.CurrentDate)
	if err != nil {
		logrus.Debugf("calendar: unparsable date %q left unchanged", e.state.CurrentDate)
		return
	}
	e.state.CurrentDate = d.AddDate(0, 0, 1).Format(sim.DateLayout)
}
