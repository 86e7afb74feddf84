package rostersim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Skill pool the generator draws from.
var skillPool = []string{ //nolint:gochecknoglobals // static generator data
	"go", "javascript", "react", "postgres", "docker",
	"kubernetes", "css", "python", "terraform", "kafka",
}

var priorities = []string{"high", "medium", "low"} //nolint:gochecknoglobals // static generator data

// Generation ranges.
const (
	minSkillsPerMember = 2
	maxSkillsPerMember = 5
	minSkillLevel      = 1
	maxSkillLevel      = 10
	minCapacityHours   = 20
	maxCapacityHours   = 50
	minRequiredSkills  = 1
	maxRequiredSkills  = 3
	minEstimateHours   = 2
	maxEstimateHours   = 16
	maxDeadlineDays    = 30
)

// generator produces reproducible random rosters.
type generator struct {
	rng *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // deterministic seed for reproducible rosters
}

func (g *generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// pickSkills draws n distinct skills from the pool.
func (g *generator) pickSkills(n int) []string {
	idx := g.rng.Perm(len(skillPool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = skillPool[j]
	}
	return out
}

// members generates n members with random skill sets and capacities.
func (g *generator) members(n int) []Member {
	out := make([]Member, n)
	for i := range out {
		skills := g.pickSkills(g.intBetween(minSkillsPerMember, maxSkillsPerMember))
		levels := make(map[string]float64, len(skills))
		for _, s := range skills {
			levels[s] = float64(g.intBetween(minSkillLevel, maxSkillLevel))
		}
		out[i] = Member{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("member-%03d", i+1),
			Skills:      skills,
			SkillLevels: levels,
			MaxCapacity: float64(g.intBetween(minCapacityHours, maxCapacityHours)),
		}
	}
	return out
}

// tasks generates n tasks with random requirements and deadlines.
func (g *generator) tasks(n int) []Task {
	now := time.Now()
	out := make([]Task, n)
	for i := range out {
		out[i] = Task{
			ID:             uuid.New().String(),
			Title:          fmt.Sprintf("task-%03d", i+1),
			Description:    "generated by rostersim",
			RequiredSkills: g.pickSkills(g.intBetween(minRequiredSkills, maxRequiredSkills)),
			EstimatedHours: float64(g.intBetween(minEstimateHours, maxEstimateHours)),
			Priority:       priorities[g.rng.Intn(len(priorities))],
			Deadline:       now.AddDate(0, 0, g.intBetween(1, maxDeadlineDays)).Format("2006-01-02"),
		}
	}
	return out
}
