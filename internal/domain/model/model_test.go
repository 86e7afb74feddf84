package model_test

import (
	"testing"
	"time"

	model "github.com/okian/gaffer/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestParsePriority(t *testing.T) {
	convey.Convey("Given priority strings", t, func() {
		convey.Convey("When parsing known values", func() {
			for raw, want := range map[string]model.Priority{
				"high":     model.PriorityHigh,
				"HIGH":     model.PriorityHigh,
				" Medium ": model.PriorityMedium,
				"low":      model.PriorityLow,
			} {
				p, err := model.ParsePriority(raw)
				convey.So(err, convey.ShouldBeNil)
				convey.So(p, convey.ShouldEqual, want)
			}
		})

		convey.Convey("When parsing an unknown value", func() {
			_, err := model.ParsePriority("urgent")
			convey.So(err, convey.ShouldWrap, model.ErrInvalidTask)
		})
	})
}

func TestPriorityWeight(t *testing.T) {
	convey.Convey("Given the priority levels", t, func() {
		convey.Convey("Then weights order high above medium above low", func() {
			convey.So(model.PriorityHigh.Weight(), convey.ShouldEqual, 3)
			convey.So(model.PriorityMedium.Weight(), convey.ShouldEqual, 2)
			convey.So(model.PriorityLow.Weight(), convey.ShouldEqual, 1)
			convey.So(model.Priority("bogus").Weight(), convey.ShouldEqual, 0)
		})
	})
}

func TestMemberValidate(t *testing.T) {
	convey.Convey("Given member validation", t, func() {
		valid := model.Member{
			Name:        "Alice",
			SkillLevels: map[string]float64{"react": 8},
			MaxCapacity: 40,
		}

		convey.Convey("When the member is well-formed", func() {
			convey.So(valid.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When the name is blank", func() {
			m := valid
			m.Name = "   "
			convey.So(m.Validate(), convey.ShouldWrap, model.ErrInvalidMember)
		})

		convey.Convey("When capacity is zero", func() {
			m := valid
			m.MaxCapacity = 0
			convey.So(m.Validate(), convey.ShouldWrap, model.ErrInvalidMember)
		})

		convey.Convey("When capacity is negative", func() {
			m := valid
			m.MaxCapacity = -5
			convey.So(m.Validate(), convey.ShouldWrap, model.ErrInvalidMember)
		})

		convey.Convey("When a skill level is negative", func() {
			m := valid
			m.SkillLevels = map[string]float64{"react": -1}
			convey.So(m.Validate(), convey.ShouldWrap, model.ErrInvalidMember)
		})
	})
}

func TestTaskValidate(t *testing.T) {
	convey.Convey("Given task validation", t, func() {
		valid := model.Task{
			Title:          "Build Login Component",
			RequiredSkills: []string{"react"},
			EstimatedHours: 8,
			Priority:       model.PriorityHigh,
			Deadline:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}

		convey.Convey("When the task is well-formed", func() {
			convey.So(valid.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When the title is blank", func() {
			tk := valid
			tk.Title = ""
			convey.So(tk.Validate(), convey.ShouldWrap, model.ErrInvalidTask)
		})

		convey.Convey("When the estimate is non-positive", func() {
			tk := valid
			tk.EstimatedHours = 0
			convey.So(tk.Validate(), convey.ShouldWrap, model.ErrInvalidTask)
		})

		convey.Convey("When the priority is unknown", func() {
			tk := valid
			tk.Priority = "urgent"
			convey.So(tk.Validate(), convey.ShouldWrap, model.ErrInvalidTask)
		})

		convey.Convey("When the deadline is missing", func() {
			tk := valid
			tk.Deadline = time.Time{}
			convey.So(tk.Validate(), convey.ShouldWrap, model.ErrInvalidTask)
		})
	})
}

func TestClone(t *testing.T) {
	convey.Convey("Given a member and a task", t, func() {
		m := model.Member{
			ID:          "m-1",
			Name:        "Alice",
			Skills:      []string{"react"},
			SkillLevels: map[string]float64{"react": 8},
			MaxCapacity: 40,
		}
		tk := model.Task{
			ID:             "t-1",
			Title:          "work",
			RequiredSkills: []string{"react"},
			EstimatedHours: 8,
			Priority:       model.PriorityHigh,
			Deadline:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}

		convey.Convey("When mutating a clone", func() {
			mc := m.Clone()
			mc.SkillLevels["react"] = 1
			mc.Skills[0] = "vue"
			mc.CurrentWorkload = 99

			tc := tk.Clone()
			tc.RequiredSkills[0] = "go"
			tc.AssignedTo = "m-9"

			convey.Convey("Then the originals are untouched", func() {
				convey.So(m.SkillLevels["react"], convey.ShouldEqual, 8)
				convey.So(m.Skills[0], convey.ShouldEqual, "react")
				convey.So(m.CurrentWorkload, convey.ShouldEqual, 0)
				convey.So(tk.RequiredSkills[0], convey.ShouldEqual, "react")
				convey.So(tk.AssignedTo, convey.ShouldBeEmpty)
			})
		})
	})
}
