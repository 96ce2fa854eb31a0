package app_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/staffsight/staffsight/internal/app"
	"github.com/staffsight/staffsight/internal/domain/model"
	"github.com/staffsight/staffsight/internal/domain/normalize"
	"github.com/staffsight/staffsight/internal/domain/rules"
	"github.com/staffsight/staffsight/internal/domain/scoring"
	"github.com/staffsight/staffsight/pkg/logger"
)

func init() {
	_ = logger.Init()
}

func record(id, dept string) model.EmployeeRecord {
	return model.EmployeeRecord{
		ID:                id,
		Department:        dept,
		TenureYears:       3,
		PerformanceScore:  4,
		TrainingHours:     30,
		ProjectsHandled:   6,
		SatisfactionScore: 4,
		SickLeaveDays:     2,
	}
}

func TestService_EvaluateOne(t *testing.T) {
	Convey("Given a service with default configuration", t, func() {
		svc := app.New()
		ctx := context.Background()

		Convey("When evaluating a healthy record", func() {
			result, adjustments, err := svc.EvaluateOne(ctx, record("EMP0001", "Engineering"))

			Convey("Then a result comes back with a bounded score", func() {
				So(err, ShouldBeNil)
				So(result.EmployeeID, ShouldEqual, "EMP0001")
				So(result.Department, ShouldEqual, "Engineering")
				So(result.Score, ShouldBeGreaterThan, 0)
				So(result.Score, ShouldBeLessThanOrEqualTo, 100)
				So(adjustments, ShouldBeEmpty)
			})
		})

		Convey("When evaluating a record with out-of-domain values", func() {
			rec := record("EMP0002", "Sales")
			rec.PerformanceScore = 12

			result, adjustments, err := svc.EvaluateOne(ctx, rec)

			Convey("Then the value is clamped and reported", func() {
				So(err, ShouldBeNil)
				So(adjustments, ShouldHaveLength, 1)
				So(adjustments[0].Field, ShouldEqual, "performance_score")
				So(result.Score, ShouldBeLessThanOrEqualTo, 100)
			})
		})

		Convey("When evaluating a record without an ID", func() {
			rec := record("", "Engineering")
			_, _, err := svc.EvaluateOne(ctx, rec)

			Convey("Then the record-level error surfaces", func() {
				So(err, ShouldWrap, normalize.ErrMissingID)
				So(app.IsInvalidRecord(err), ShouldBeTrue)
			})
		})

		Convey("When evaluating a struggling employee", func() {
			rec := model.EmployeeRecord{
				ID:                "EMP0003",
				Department:        "Support",
				TenureYears:       1,
				PerformanceScore:  1.5,
				TrainingHours:     5,
				ProjectsHandled:   1,
				SatisfactionScore: 1.5,
				SickLeaveDays:     8,
			}
			result, _, err := svc.EvaluateOne(ctx, rec)

			Convey("Then every warning flag fires", func() {
				So(err, ShouldBeNil)
				So(result.Flags.ResignationRisk, ShouldEqual, model.RiskHigh)
				So(result.Flags.PromotionEligible, ShouldBeFalse)
				So(result.Flags.TrainingNeeded, ShouldBeTrue)
				So(result.Flags.LeaveAlert, ShouldBeTrue)
			})
		})
	})

	Convey("Given a service with custom tables", t, func() {
		svc := app.New(
			app.WithWeights(scoring.Weights{Performance: 1, Projects: 1, Training: 1, Satisfaction: 1}),
			app.WithThresholds(rules.Thresholds{
				LowSatisfaction:        1,
				LowScore:               1,
				PromotionScore:         1,
				PromotionTenureYears:   1,
				PromotionTrainingHours: 1,
				TrainingLowScore:       1,
				TrainingMinHours:       1,
				SickLeaveCeiling:       100,
			}),
		)

		Convey("When evaluating against the loose thresholds", func() {
			result, _, err := svc.EvaluateOne(context.Background(), record("EMP0004", "Finance"))

			So(err, ShouldBeNil)
			So(result.Flags.ResignationRisk, ShouldEqual, model.RiskLow)
			So(result.Flags.PromotionEligible, ShouldBeTrue)
			So(result.Flags.TrainingNeeded, ShouldBeFalse)
			So(result.Flags.LeaveAlert, ShouldBeFalse)
		})
	})
}

func TestService_EvaluateBatch(t *testing.T) {
	Convey("Given a service with default configuration", t, func() {
		svc := app.New()
		ctx := context.Background()

		Convey("When evaluating a clean batch", func() {
			batch := svc.EvaluateBatch(ctx, []model.EmployeeRecord{
				record("EMP0001", "Engineering"),
				record("EMP0002", "Sales"),
			})

			Convey("Then every record evaluates and a run ID is issued", func() {
				So(batch.RunID, ShouldNotBeBlank)
				So(batch.Results, ShouldHaveLength, 2)
				So(batch.Skipped, ShouldBeEmpty)
			})
		})

		Convey("When the batch contains a duplicate employee ID", func() {
			batch := svc.EvaluateBatch(ctx, []model.EmployeeRecord{
				record("EMP0001", "Engineering"),
				record("EMP0001", "Engineering"),
				record("EMP0002", "Sales"),
			})

			Convey("Then the duplicate is skipped with its input index", func() {
				So(batch.Results, ShouldHaveLength, 2)
				So(batch.Skipped, ShouldHaveLength, 1)
				So(batch.Skipped[0].Index, ShouldEqual, 1)
				So(batch.Skipped[0].EmployeeID, ShouldEqual, "EMP0001")
			})
		})

		Convey("When the batch contains an invalid record", func() {
			batch := svc.EvaluateBatch(ctx, []model.EmployeeRecord{
				record("EMP0001", "Engineering"),
				record("EMP0002", ""),
				record("EMP0003", "HR"),
			})

			Convey("Then the bad record degrades without failing the batch", func() {
				So(batch.Results, ShouldHaveLength, 2)
				So(batch.Skipped, ShouldHaveLength, 1)
				So(batch.Skipped[0].Index, ShouldEqual, 1)
			})
		})

		Convey("When two runs process the same records", func() {
			recs := []model.EmployeeRecord{record("EMP0001", "Engineering")}
			first := svc.EvaluateBatch(ctx, recs)
			second := svc.EvaluateBatch(ctx, recs)

			Convey("Then nothing carries over between runs", func() {
				So(first.Results, ShouldHaveLength, 1)
				So(second.Results, ShouldHaveLength, 1)
				So(second.Skipped, ShouldBeEmpty)
				So(first.RunID, ShouldNotEqual, second.RunID)
			})
		})
	})
}

func TestService_Aggregates(t *testing.T) {
	Convey("Given evaluated results", t, func() {
		svc := app.New()
		ctx := context.Background()
		batch := svc.EvaluateBatch(ctx, []model.EmployeeRecord{
			record("EMP0001", "Engineering"),
			record("EMP0002", "Engineering"),
			record("EMP0003", "Sales"),
		})

		Convey("When asking for summaries", func() {
			summaries := svc.Summaries(ctx, batch.Results)

			So(summaries, ShouldHaveLength, 2)
			So(summaries["Engineering"].Count, ShouldEqual, 2)
			So(summaries["Sales"].Count, ShouldEqual, 1)
		})

		Convey("When asking for the overall summary", func() {
			overall := svc.Overall(ctx, batch.Results)

			So(overall.Count, ShouldEqual, 3)
			So(overall.Empty, ShouldBeFalse)
		})

		Convey("When asking for rankings", func() {
			top, err := svc.TopN(ctx, batch.Results, 2)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 2)
			So(top[0].Rank, ShouldEqual, 1)
			So(top[1].Rank, ShouldEqual, 2)

			bottom, err := svc.BottomN(ctx, batch.Results, 1)
			So(err, ShouldBeNil)
			So(bottom, ShouldHaveLength, 1)
		})
	})
}

func TestService_GetStats(t *testing.T) {
	Convey("Given a default service", t, func() {
		svc := app.New()

		Convey("When fetching stats", func() {
			stats := svc.GetStats()

			Convey("Then the active tables are exposed", func() {
				So(stats, ShouldContainKey, "weights")
				So(stats, ShouldContainKey, "scale")
				So(stats, ShouldContainKey, "thresholds")
				So(stats["weights"], ShouldResemble, scoring.DefaultWeights())
				So(stats["thresholds"], ShouldResemble, rules.DefaultThresholds())
			})
		})
	})
}
