package allocator

import (
	"math"

	"github.com/okian/gaffer/internal/domain/model"
	"github.com/okian/gaffer/internal/domain/types"
)

const percent = 100

// Summarize derives run statistics from a list of assignment records.
// The average match score covers assigned records only and is 0 when
// nothing was assigned.
func Summarize(records []types.AssignmentRecord) types.Stats {
	stats := types.Stats{TotalTasks: len(records)}

	var scoreSum float64
	for _, r := range records {
		if r.Assigned() {
			stats.AssignedTasks++
			scoreSum += float64(r.MatchScore)
		}
	}
	stats.UnassignedTasks = stats.TotalTasks - stats.AssignedTasks

	if stats.AssignedTasks > 0 {
		stats.AvgMatchScore = int(math.Round(scoreSum / float64(stats.AssignedTasks)))
	}
	if stats.TotalTasks > 0 {
		stats.Efficiency = int(math.Round(float64(stats.AssignedTasks) / float64(stats.TotalTasks) * percent))
	}

	return stats
}

// SummarizeMembers reports post-run utilization for every member, whether
// or not they received work.
func SummarizeMembers(members []*model.Member) []types.MemberSummary {
	out := make([]types.MemberSummary, 0, len(members))
	for _, m := range members {
		s := types.MemberSummary{
			ID:              m.ID,
			Name:            m.Name,
			CurrentWorkload: m.CurrentWorkload,
			MaxCapacity:     m.MaxCapacity,
		}
		if m.MaxCapacity > 0 {
			s.Utilization = int(math.Round(m.CurrentWorkload / m.MaxCapacity * percent))
		}
		out = append(out, s)
	}
	return out
}
