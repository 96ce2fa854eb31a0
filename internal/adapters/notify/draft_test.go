package notify_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/staffsight/staffsight/internal/adapters/notify"
	"github.com/staffsight/staffsight/internal/domain/model"
)

func flaggedRecord() model.EmployeeRecord {
	return model.EmployeeRecord{
		ID:                "EMP0007",
		Name:              "Jo Example",
		Department:        "Sales",
		TenureYears:       4,
		PerformanceScore:  2.0,
		TrainingHours:     8,
		ProjectsHandled:   2,
		SatisfactionScore: 1.8,
		SickLeaveDays:     9,
	}
}

func TestDraftsFor(t *testing.T) {
	Convey("Given an employee with every flag raised", t, func() {
		rec := flaggedRecord()
		res := model.EvaluationResult{
			EmployeeID: rec.ID,
			Department: rec.Department,
			Score:      25,
			Flags: model.FlagSet{
				ResignationRisk:   model.RiskHigh,
				PromotionEligible: true,
				TrainingNeeded:    true,
				LeaveAlert:        true,
			},
		}

		Convey("When building drafts", func() {
			drafts := notify.DraftsFor(rec, res)

			Convey("Then one draft exists per concern", func() {
				So(drafts, ShouldHaveLength, 4)
				kinds := make(map[notify.Kind]bool)
				for _, d := range drafts {
					kinds[d.Kind] = true
					So(d.EmployeeID, ShouldEqual, "EMP0007")
					So(d.Subject, ShouldContainSubstring, "EMP0007")
					So(d.Body, ShouldNotBeBlank)
				}
				So(kinds[notify.KindRetention], ShouldBeTrue)
				So(kinds[notify.KindPromotion], ShouldBeTrue)
				So(kinds[notify.KindTraining], ShouldBeTrue)
				So(kinds[notify.KindWellness], ShouldBeTrue)
			})
		})
	})

	Convey("Given an employee with nothing flagged", t, func() {
		rec := flaggedRecord()
		res := model.EvaluationResult{
			EmployeeID: rec.ID,
			Flags:      model.FlagSet{ResignationRisk: model.RiskLow},
		}

		Convey("When building drafts", func() {
			So(notify.DraftsFor(rec, res), ShouldBeEmpty)
		})
	})

	Convey("Given medium resignation risk", t, func() {
		rec := flaggedRecord()
		res := model.EvaluationResult{
			EmployeeID: rec.ID,
			Flags:      model.FlagSet{ResignationRisk: model.RiskMedium},
		}

		Convey("When building drafts", func() {
			drafts := notify.DraftsFor(rec, res)

			Convey("Then a retention draft is still prepared", func() {
				So(drafts, ShouldHaveLength, 1)
				So(drafts[0].Kind, ShouldEqual, notify.KindRetention)
			})
		})
	})
}

func TestDraftContent(t *testing.T) {
	Convey("Given a named employee", t, func() {
		rec := flaggedRecord()
		res := model.EvaluationResult{EmployeeID: rec.ID, Score: 30}

		Convey("When building a retention draft", func() {
			d := notify.RetentionDraft(rec, res)

			Convey("Then the body addresses the employee by name", func() {
				So(d.Body, ShouldContainSubstring, "Dear Jo Example")
				So(d.Body, ShouldContainSubstring, "1.8/5")
			})
		})

		Convey("When building a wellness draft", func() {
			d := notify.WellnessDraft(rec)

			So(d.Body, ShouldContainSubstring, "9 sick days")
		})

		Convey("When building a promotion draft", func() {
			d := notify.PromotionDraft(rec, res)

			Convey("Then it is addressed to the HR team", func() {
				So(d.Body, ShouldStartWith, "Dear HR Team")
			})
		})
	})

	Convey("Given an unnamed employee", t, func() {
		rec := flaggedRecord()
		rec.Name = ""

		Convey("When building any draft", func() {
			d := notify.TrainingDraft(rec, model.EvaluationResult{EmployeeID: rec.ID})

			Convey("Then the greeting falls back to a generic form", func() {
				So(d.Body, ShouldContainSubstring, "Dear Employee")
			})
		})
	})
}
