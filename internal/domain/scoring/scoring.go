// Package scoring computes how well a member suits a task.
package scoring

import (
	"math"

	"github.com/okian/gaffer/internal/domain/model"
)

// Default scoring weights. With skill levels in the nominal 1-10 range and
// a workload ratio of 0-1 these produce scores in roughly 0-100, but the
// top end is intentionally not clamped: an unusually proficient member can
// score above 100.
const (
	defaultLevelWeight       = 10
	defaultLoadPenaltyWeight = 20
)

// Scorer computes a suitability score for a (member, task) pair.
type Scorer interface {
	// Score must be evaluated against the member's current workload at
	// call time; assignments committed earlier in the same allocation
	// pass are expected to lower later scores.
	Score(member *model.Member, task *model.Task) float64
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLevelWeight sets the multiplier applied to the average skill level.
func WithLevelWeight(w float64) Option {
	return func(e *Engine) {
		if w > 0 {
			e.levelWeight = w
		}
	}
}

// WithLoadPenaltyWeight sets the multiplier applied to the workload ratio.
func WithLoadPenaltyWeight(w float64) Option {
	return func(e *Engine) {
		if w > 0 {
			e.loadPenaltyWeight = w
		}
	}
}

// Engine implements Scorer with skill-overlap scoring and a load penalty.
type Engine struct {
	levelWeight       float64
	loadPenaltyWeight float64
}

// NewEngine creates a scoring engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		levelWeight:       defaultLevelWeight,
		loadPenaltyWeight: defaultLoadPenaltyWeight,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Score returns the suitability of member for task.
//
// The score is the member's average proficiency over the task's required
// skills they actually hold, scaled by the level weight, minus a penalty
// proportional to how loaded the member already is. A member holding none
// of the required skills scores exactly 0. The result is floored at 0 and
// has no upper clamp.
func (e *Engine) Score(member *model.Member, task *model.Task) float64 {
	var sum float64
	matched := 0
	for _, skill := range task.RequiredSkills {
		if level, ok := member.SkillLevels[skill]; ok {
			sum += level
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	avgLevel := sum / float64(matched)
	workloadRatio := member.CurrentWorkload / member.MaxCapacity
	penalty := workloadRatio * e.loadPenaltyWeight

	return math.Max(0, avgLevel*e.levelWeight-penalty)
}
