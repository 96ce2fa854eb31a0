// Package report renders evaluation output as PDF documents.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf/v2"

	"github.com/staffsight/staffsight/internal/domain/aggregate"
	"github.com/staffsight/staffsight/internal/domain/model"
	"github.com/staffsight/staffsight/pkg/metrics"
)

// Layout constants for A4 portrait with 15mm side margins.
const (
	pageLeft   = 15.0
	pageRight  = 195.0
	tableWidth = 180.0
)

// Generator builds PDF reports. Stateless; safe for concurrent use.
type Generator struct {
	now func() time.Time
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New constructs a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// EvaluationReport renders a single employee evaluation as a PDF with
// four sections: basic information, evaluation scores, key metrics,
// and recommendations.
func (g *Generator) EvaluationReport(rec model.EmployeeRecord, res model.EvaluationResult) ([]byte, error) {
	pdf := newDocument()
	pdf.AddPage()

	g.addTitle(pdf, "Employee Evaluation Report")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on: %s", g.now().UTC().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Report ID: %s", uuid.NewString()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Employee ID: %s", res.EmployeeID), "", 1, "L", false, 0, "")
	if rec.Name != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Employee Name: %s", rec.Name), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	addSectionHeader(pdf, "1. Basic Information")
	addKeyValue(pdf, "Department:", res.Department)
	addKeyValue(pdf, "Job Title:", orDash(rec.JobTitle))
	addKeyValue(pdf, "Tenure:", fmt.Sprintf("%.1f years", rec.TenureYears))
	pdf.Ln(5)

	addSectionHeader(pdf, "2. Evaluation Scores")
	addKeyValue(pdf, "Productivity Score:", fmt.Sprintf("%.1f/100", res.Score))
	addKeyValue(pdf, "Resignation Risk:", string(res.Flags.ResignationRisk))
	addKeyValue(pdf, "Promotion Eligible:", yesNo(res.Flags.PromotionEligible))
	addKeyValue(pdf, "Training Needed:", yesNo(res.Flags.TrainingNeeded))
	addKeyValue(pdf, "Leave Alert:", yesNo(res.Flags.LeaveAlert))
	pdf.Ln(5)

	addSectionHeader(pdf, "3. Key Metrics")
	addKeyValue(pdf, "Performance Score:", fmt.Sprintf("%.1f/5", rec.PerformanceScore))
	addKeyValue(pdf, "Projects Handled:", fmt.Sprintf("%d", rec.ProjectsHandled))
	addKeyValue(pdf, "Training Hours:", fmt.Sprintf("%.1f", rec.TrainingHours))
	addKeyValue(pdf, "Satisfaction Score:", fmt.Sprintf("%.1f/5", rec.SatisfactionScore))
	addKeyValue(pdf, "Sick Leave Days:", fmt.Sprintf("%d", rec.SickLeaveDays))
	pdf.Ln(5)

	addSectionHeader(pdf, "4. Recommendations")
	pdf.SetFont("Arial", "", 10)
	for _, line := range Recommendations(rec, res) {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	addFooterNote(pdf)
	return output(pdf)
}

// SummaryReport renders a batch-level report: per-department summary
// table, the overall summary row, and top/bottom ranking tables.
func (g *Generator) SummaryReport(summaries map[string]model.DepartmentSummary, overall model.DepartmentSummary, top, bottom []model.EvaluationResult) ([]byte, error) {
	pdf := newDocument()
	pdf.AddPage()

	g.addTitle(pdf, "Workforce Evaluation Summary")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on: %s", g.now().UTC().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	addSectionHeader(pdf, "Department Summaries")
	g.addSummaryTable(pdf, summaries, overall)
	pdf.Ln(8)

	if len(top) > 0 {
		g.addRankingTable(pdf, fmt.Sprintf("Top %d Employees", len(top)), top)
		pdf.Ln(6)
	}
	if len(bottom) > 0 {
		g.addRankingTable(pdf, fmt.Sprintf("Bottom %d Employees", len(bottom)), bottom)
		pdf.Ln(6)
	}

	addFooterNote(pdf)
	return output(pdf)
}

func newDocument() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeft, 20, pageLeft)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("{nb}")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(108, 117, 125)
		pdf.SetX(pageLeft)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	return pdf
}

func (g *Generator) addTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 102, 204)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(0, 102, 204)
	pdf.Line(pageLeft, pdf.GetY(), pageRight, pdf.GetY())
	pdf.Ln(8)
}

func addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func addKeyValue(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func addFooterNote(pdf *gofpdf.Fpdf) {
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 6, "This report was generated automatically by Staffsight", "", 1, "C", false, 0, "")
}

func (g *Generator) addSummaryTable(pdf *gofpdf.Fpdf, summaries map[string]model.DepartmentSummary, overall model.DepartmentSummary) {
	// Stable row order: departments sorted, overall last.
	depts := make([]string, 0, len(summaries))
	for d := range summaries {
		depts = append(depts, d)
	}
	sort.Strings(depts)

	headerHeight := 8.0
	rowHeight := 7.0
	cols := []struct {
		width float64
		title string
	}{
		{54, "Department"},
		{18, "Count"},
		{24, "Mean"},
		{24, "Median"},
		{20, "High"},
		{20, "Promo"},
		{20, "Train"},
	}

	headerY := pdf.GetY()
	pdf.SetFillColor(0, 102, 204)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	pdf.Rect(pageLeft, headerY, tableWidth, headerHeight, "FD")
	x := pageLeft
	for _, c := range cols {
		pdf.SetXY(x, headerY)
		pdf.CellFormat(c.width, headerHeight, c.title, "", 0, "L", false, 0, "")
		x += c.width
	}
	pdf.SetY(headerY + headerHeight)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(33, 37, 41)
	rows := make([]model.DepartmentSummary, 0, len(depts)+1)
	for _, d := range depts {
		rows = append(rows, summaries[d])
	}
	overall.Department = aggregate.OverallDepartment
	rows = append(rows, overall)

	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(248, 249, 250)
		}
		rowY := pdf.GetY()
		pdf.Rect(pageLeft, rowY, tableWidth, rowHeight, "FD")

		cells := []string{
			row.Department,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%.1f", row.MeanScore),
			fmt.Sprintf("%.1f", row.MedianScore),
			fmt.Sprintf("%d", row.HighRisk),
			fmt.Sprintf("%d", row.PromotionEligible),
			fmt.Sprintf("%d", row.TrainingNeeded),
		}
		x := pageLeft
		for j, cell := range cells {
			pdf.SetXY(x, rowY)
			pdf.CellFormat(cols[j].width, rowHeight, cell, "", 0, "L", false, 0, "")
			x += cols[j].width
		}
		pdf.SetY(rowY + rowHeight)
	}
}

func (g *Generator) addRankingTable(pdf *gofpdf.Fpdf, title string, entries []model.EvaluationResult) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headerHeight := 8.0
	rowHeight := 7.0
	col1 := 90.0 // employee
	col2 := 60.0 // department
	col3 := 30.0 // score

	headerY := pdf.GetY()
	pdf.SetFillColor(0, 102, 204)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	pdf.Rect(pageLeft, headerY, tableWidth, headerHeight, "FD")
	pdf.SetXY(pageLeft+3, headerY)
	pdf.CellFormat(col1, headerHeight, "Employee", "", 0, "L", false, 0, "")
	pdf.SetXY(pageLeft+3+col1, headerY)
	pdf.CellFormat(col2, headerHeight, "Department", "", 0, "L", false, 0, "")
	pdf.SetXY(pageLeft+3+col1+col2, headerY)
	pdf.CellFormat(col3-6, headerHeight, "Score", "", 0, "R", false, 0, "")
	pdf.SetY(headerY + headerHeight)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(33, 37, 41)
	for i, e := range entries {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(248, 249, 250)
		}
		rowY := pdf.GetY()
		pdf.Rect(pageLeft, rowY, tableWidth, rowHeight, "FD")
		pdf.SetXY(pageLeft+3, rowY)
		pdf.CellFormat(col1, rowHeight, fmt.Sprintf("%d. %s", i+1, e.EmployeeID), "", 0, "L", false, 0, "")
		pdf.SetXY(pageLeft+3+col1, rowY)
		pdf.CellFormat(col2, rowHeight, e.Department, "", 0, "L", false, 0, "")
		pdf.SetXY(pageLeft+3+col1+col2, rowY)
		pdf.CellFormat(col3-6, rowHeight, fmt.Sprintf("%.1f", e.Score), "", 0, "R", false, 0, "")
		pdf.SetY(rowY + rowHeight)
	}
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderPDF, err)
	}
	metrics.RecordReportGenerated()
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
