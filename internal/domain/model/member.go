// Package model contains domain entities passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Member represents a worker who can receive task assignments.
// SkillLevels maps a skill name to a proficiency level (nominally 1-10);
// a skill absent from the map is a skill the member does not hold.
type Member struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Skills          []string           `json:"skills"`
	SkillLevels     map[string]float64 `json:"skill_levels"`
	CurrentWorkload float64            `json:"current_workload"`
	MaxCapacity     float64            `json:"max_capacity"`
}

// Validate checks the member for structural problems. A member with a
// non-positive capacity would poison the workload ratio downstream, so it
// is rejected here at ingestion time.
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidMember)
	}
	if m.MaxCapacity <= 0 {
		return fmt.Errorf("%w: max_capacity must be positive, got %v", ErrInvalidMember, m.MaxCapacity)
	}
	for skill, level := range m.SkillLevels {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("%w: empty skill name", ErrInvalidMember)
		}
		if level < 0 {
			return fmt.Errorf("%w: negative level for skill %q", ErrInvalidMember, skill)
		}
	}
	return nil
}

// Clone returns a deep copy so snapshots never alias store-owned state.
func (m *Member) Clone() *Member {
	cp := *m
	cp.Skills = append([]string(nil), m.Skills...)
	cp.SkillLevels = make(map[string]float64, len(m.SkillLevels))
	for k, v := range m.SkillLevels {
		cp.SkillLevels[k] = v
	}
	return &cp
}
