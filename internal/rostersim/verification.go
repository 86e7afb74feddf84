package rostersim

import "fmt"

// verifyReport checks the structural promises of an allocation report:
// record count matches the backlog, no member exceeds capacity, and every
// unassigned record carries a reason.
func verifyReport(report Report, members []Member, tasks []Task) error {
	if got, want := report.Stats.TotalTasks, len(tasks); got != want {
		return fmt.Errorf("report covers %d tasks, submitted %d", got, want)
	}
	if got, want := len(report.Members), len(members); got != want {
		return fmt.Errorf("report covers %d members, submitted %d", got, want)
	}
	if report.Stats.AssignedTasks+report.Stats.UnassignedTasks != report.Stats.TotalTasks {
		return fmt.Errorf("assigned %d + unassigned %d != total %d",
			report.Stats.AssignedTasks, report.Stats.UnassignedTasks, report.Stats.TotalTasks)
	}

	for _, m := range report.Members {
		if m.CurrentWorkload > m.MaxCapacity {
			return fmt.Errorf("member %s over capacity: %v > %v", m.ID, m.CurrentWorkload, m.MaxCapacity)
		}
	}
	for _, rec := range report.Assignments {
		if rec.MemberID == "" && rec.Reason == "" {
			return fmt.Errorf("unassigned task %s has no reason", rec.TaskID)
		}
		if rec.MemberID == "" && rec.MatchScore != 0 {
			return fmt.Errorf("unassigned task %s has non-zero score %d", rec.TaskID, rec.MatchScore)
		}
	}
	return nil
}

// verifyDeterminism checks that two runs over the same roster agree.
func verifyDeterminism(first, second Report) error {
	if first.Stats != second.Stats {
		return fmt.Errorf("stats diverged between runs: %+v vs %+v", first.Stats, second.Stats)
	}
	if len(first.Assignments) != len(second.Assignments) {
		return fmt.Errorf("assignment count diverged: %d vs %d", len(first.Assignments), len(second.Assignments))
	}
	for i := range first.Assignments {
		if first.Assignments[i] != second.Assignments[i] {
			return fmt.Errorf("assignment %d diverged: %+v vs %+v", i, first.Assignments[i], second.Assignments[i])
		}
	}
	return nil
}
