// Package round tracks the score, current problem and clock of one timed round.
package round

import (
	"time"

	"github.com/verte-zerg/tapquiz/internal/model"
)

// ProblemSource supplies the next problem.
type ProblemSource interface {
	Generate() model.Problem
}

// Round holds the mutable state of a single timed round.
type Round struct {
	gen       ProblemSource
	budget    time.Duration
	score     model.Score
	problem   model.Problem
	startedAt time.Time
	started   bool
	completed bool
}

// New constructs a round that lasts budget once started.
func New(gen ProblemSource, budget time.Duration) *Round {
	return &Round{gen: gen, budget: budget}
}

// Start resets the score, clears the completion latch and draws the first problem.
func (r *Round) Start(now time.Time) {
	r.score = model.Score{}
	r.completed = false
	r.started = true
	r.problem = r.gen.Generate()
	r.startedAt = now
}

// StartClock re-anchors the round timer without touching score or problem.
func (r *Round) StartClock(now time.Time) {
	r.startedAt = now
}

// SubmitAnswer scores value against the current problem and moves on to a new one.
// It reports whether the answer was correct; calls outside an active round are ignored.
func (r *Round) SubmitAnswer(value int) bool {
	if !r.started || r.completed {
		return false
	}
	correct := value == r.problem.Answer
	r.score.Total++
	if correct {
		r.score.Correct++
	}
	r.problem = r.gen.Generate()
	return correct
}

// RemainingTime returns the unused part of the budget, never negative.
func (r *Round) RemainingTime(now time.Time) time.Duration {
	remain := r.budget - now.Sub(r.startedAt)
	if remain < 0 {
		return 0
	}
	return remain
}

// IsExpired reports whether the budget is used up.
func (r *Round) IsExpired(now time.Time) bool {
	return r.RemainingTime(now) == 0
}

// Complete latches the round as finished. Only the first call per round returns true.
func (r *Round) Complete() bool {
	if r.completed {
		return false
	}
	r.completed = true
	return true
}

// Completed reports whether the round has been finalized.
func (r *Round) Completed() bool {
	return r.completed
}

// Score returns the current score.
func (r *Round) Score() model.Score {
	return r.score
}

// Problem returns the problem awaiting an answer.
func (r *Round) Problem() model.Problem {
	return r.problem
}

// Budget returns the configured round length.
func (r *Round) Budget() time.Duration {
	return r.budget
}
