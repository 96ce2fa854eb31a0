package aggregate

import (
	"sort"

	"github.com/staffsight/staffsight/internal/domain/model"
)

// TopN returns the n highest-scoring results, ordered by score
// descending. Ties break on EmployeeID ascending so the ordering is
// stable under any permutation of the input.
func TopN(results []model.EvaluationResult, n int) ([]model.EvaluationResult, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	ranked := ranked(results, func(a, b model.EvaluationResult) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.EmployeeID < b.EmployeeID
	})
	return truncate(ranked, n), nil
}

// BottomN returns the n lowest-scoring results, ordered by score
// ascending, with the same EmployeeID tie-break as TopN.
func BottomN(results []model.EvaluationResult, n int) ([]model.EvaluationResult, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	ranked := ranked(results, func(a, b model.EvaluationResult) bool {
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.EmployeeID < b.EmployeeID
	})
	return truncate(ranked, n), nil
}

// ranked sorts a copy of results; the caller's slice keeps its order.
func ranked(results []model.EvaluationResult, less func(a, b model.EvaluationResult) bool) []model.EvaluationResult {
	out := make([]model.EvaluationResult, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func truncate(results []model.EvaluationResult, n int) []model.EvaluationResult {
	if n > len(results) {
		n = len(results)
	}
	return results[:n]
}
