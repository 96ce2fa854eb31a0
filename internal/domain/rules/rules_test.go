package rules_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/staffsight/staffsight/internal/domain/model"
	"github.com/staffsight/staffsight/internal/domain/rules"
)

func TestClassifier_Classify(t *testing.T) {
	Convey("Given a classifier with the default thresholds", t, func() {
		classifier := rules.New()

		Convey("When satisfaction and score are both low", func() {
			rec := model.EmployeeRecord{SatisfactionScore: 2.0}
			flags := classifier.Classify(rec, 35)

			Convey("Then resignation risk is high", func() {
				So(flags.ResignationRisk, ShouldEqual, model.RiskHigh)
			})
		})

		Convey("When only satisfaction is low", func() {
			rec := model.EmployeeRecord{SatisfactionScore: 2.0}
			flags := classifier.Classify(rec, 60)

			So(flags.ResignationRisk, ShouldEqual, model.RiskMedium)
		})

		Convey("When only the score is low", func() {
			rec := model.EmployeeRecord{SatisfactionScore: 4.0}
			flags := classifier.Classify(rec, 35)

			So(flags.ResignationRisk, ShouldEqual, model.RiskMedium)
		})

		Convey("When neither indicator is low", func() {
			rec := model.EmployeeRecord{SatisfactionScore: 4.0}
			flags := classifier.Classify(rec, 60)

			So(flags.ResignationRisk, ShouldEqual, model.RiskLow)
		})

		Convey("When values sit exactly on the risk thresholds", func() {
			rec := model.EmployeeRecord{SatisfactionScore: 2.5}
			flags := classifier.Classify(rec, 40)

			Convey("Then ties land on the riskier tier", func() {
				So(flags.ResignationRisk, ShouldEqual, model.RiskHigh)
			})
		})

		Convey("When a record meets every promotion minimum", func() {
			rec := model.EmployeeRecord{
				SatisfactionScore: 4.5,
				TenureYears:       3,
				TrainingHours:     35,
			}
			flags := classifier.Classify(rec, 80)

			So(flags.PromotionEligible, ShouldBeTrue)
		})

		Convey("When any one promotion minimum is missed", func() {
			base := model.EmployeeRecord{
				SatisfactionScore: 4.5,
				TenureYears:       3,
				TrainingHours:     35,
			}

			Convey("A short tenure disqualifies", func() {
				rec := base
				rec.TenureYears = 1.5
				So(classifier.Classify(rec, 80).PromotionEligible, ShouldBeFalse)
			})

			Convey("Too few training hours disqualify", func() {
				rec := base
				rec.TrainingHours = 10
				So(classifier.Classify(rec, 80).PromotionEligible, ShouldBeFalse)
			})

			Convey("A score below the bar disqualifies", func() {
				So(classifier.Classify(base, 70).PromotionEligible, ShouldBeFalse)
			})
		})

		Convey("When values sit exactly on the promotion minimums", func() {
			rec := model.EmployeeRecord{
				SatisfactionScore: 4.5,
				TenureYears:       2,
				TrainingHours:     30,
			}

			Convey("Then meeting the bar exactly qualifies", func() {
				So(classifier.Classify(rec, 75).PromotionEligible, ShouldBeTrue)
			})
		})

		Convey("When either training bound is missed", func() {
			Convey("Low hours alone flag training", func() {
				rec := model.EmployeeRecord{SatisfactionScore: 4, TrainingHours: 10}
				So(classifier.Classify(rec, 60).TrainingNeeded, ShouldBeTrue)
			})

			Convey("A low score alone flags training", func() {
				rec := model.EmployeeRecord{SatisfactionScore: 4, TrainingHours: 25}
				So(classifier.Classify(rec, 35).TrainingNeeded, ShouldBeTrue)
			})

			Convey("Meeting both bounds clears the flag", func() {
				rec := model.EmployeeRecord{SatisfactionScore: 4, TrainingHours: 25}
				So(classifier.Classify(rec, 60).TrainingNeeded, ShouldBeFalse)
			})
		})

		Convey("When sick leave crosses the ceiling", func() {
			Convey("Days above the ceiling raise the alert", func() {
				rec := model.EmployeeRecord{SatisfactionScore: 4, SickLeaveDays: 6}
				So(classifier.Classify(rec, 60).LeaveAlert, ShouldBeTrue)
			})

			Convey("Days at the ceiling do not", func() {
				rec := model.EmployeeRecord{SatisfactionScore: 4, SickLeaveDays: 5}
				So(classifier.Classify(rec, 60).LeaveAlert, ShouldBeFalse)
			})
		})
	})

	Convey("Given a classifier with a custom threshold table", t, func() {
		classifier := rules.New(rules.WithThresholds(rules.Thresholds{
			LowSatisfaction:        3.0,
			LowScore:               50,
			PromotionScore:         60,
			PromotionTenureYears:   1,
			PromotionTrainingHours: 5,
			TrainingLowScore:       30,
			TrainingMinHours:       10,
			SickLeaveCeiling:       2,
		}))

		Convey("When classifying against the custom bounds", func() {
			rec := model.EmployeeRecord{
				SatisfactionScore: 3.5,
				TenureYears:       1.5,
				TrainingHours:     12,
				SickLeaveDays:     3,
			}
			flags := classifier.Classify(rec, 65)

			So(flags.ResignationRisk, ShouldEqual, model.RiskLow)
			So(flags.PromotionEligible, ShouldBeTrue)
			So(flags.TrainingNeeded, ShouldBeFalse)
			So(flags.LeaveAlert, ShouldBeTrue)
		})
	})

	Convey("Given two classifiers sharing a threshold table", t, func() {
		a := rules.New()
		b := rules.New(rules.WithThresholds(rules.DefaultThresholds()))
		rec := model.EmployeeRecord{SatisfactionScore: 2.2, TenureYears: 4, TrainingHours: 31, SickLeaveDays: 7}

		Convey("Then identical input yields identical flags", func() {
			So(a.Classify(rec, 42), ShouldResemble, b.Classify(rec, 42))
		})
	})
}
