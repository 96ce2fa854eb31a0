// Package dataset decodes tabular employee data into domain records.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/staffsight/staffsight/internal/domain/model"
)

// Column names recognized in the header row. Matching is
// case-insensitive and ignores surrounding whitespace.
const (
	colEmployeeID   = "employee_id"
	colName         = "name"
	colDepartment   = "department"
	colJobTitle     = "job_title"
	colTenure       = "tenure_years"
	colPerformance  = "performance_score"
	colTraining     = "training_hours"
	colProjects     = "projects_handled"
	colSatisfaction = "satisfaction_score"
	colSickLeave    = "sick_leave_days"
)

// requiredColumns must all be present in the header. The descriptive
// columns (name, job_title) are optional.
var requiredColumns = []string{
	colEmployeeID,
	colDepartment,
	colTenure,
	colPerformance,
	colTraining,
	colProjects,
	colSatisfaction,
	colSickLeave,
}

// RowError reports one CSV row that could not be decoded. Line is the
// 1-based line number in the input, header included.
type RowError struct {
	Line   int
	Reason string
}

// DecodeCSV reads employee records from r. The first row must be a
// header naming the columns; column order is free. Rows that fail to
// parse are collected as RowErrors while the rest of the file still
// decodes. A missing required column or an unreadable stream fails the
// whole decode.
func DecodeCSV(r io.Reader) ([]model.EmployeeRecord, []RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrReadDataset, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingHeader, col)
		}
	}

	var (
		records []model.EmployeeRecord
		rowErrs []RowError
		line    = 1 // header consumed
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: err.Error()})
			continue
		}

		rec, err := decodeRow(row, index)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: err.Error()})
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 && len(rowErrs) == 0 {
		return nil, nil, ErrEmptyDataset
	}
	return records, rowErrs, nil
}

func decodeRow(row []string, index map[string]int) (model.EmployeeRecord, error) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := model.EmployeeRecord{
		ID:         get(colEmployeeID),
		Name:       get(colName),
		Department: get(colDepartment),
		JobTitle:   get(colJobTitle),
	}

	var err error
	if rec.TenureYears, err = parseFloat(colTenure, get(colTenure)); err != nil {
		return model.EmployeeRecord{}, err
	}
	if rec.PerformanceScore, err = parseFloat(colPerformance, get(colPerformance)); err != nil {
		return model.EmployeeRecord{}, err
	}
	if rec.TrainingHours, err = parseFloat(colTraining, get(colTraining)); err != nil {
		return model.EmployeeRecord{}, err
	}
	if rec.ProjectsHandled, err = parseInt(colProjects, get(colProjects)); err != nil {
		return model.EmployeeRecord{}, err
	}
	if rec.SatisfactionScore, err = parseFloat(colSatisfaction, get(colSatisfaction)); err != nil {
		return model.EmployeeRecord{}, err
	}
	if rec.SickLeaveDays, err = parseInt(colSickLeave, get(colSickLeave)); err != nil {
		return model.EmployeeRecord{}, err
	}
	return rec, nil
}

func parseFloat(col, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func parseInt(col, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}
