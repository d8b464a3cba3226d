package query

import (
	"slices"
	"strings"

	"github.com/zotcurve/internal/grades"
	"github.com/zotcurve/internal/matchers"
)

type predicate func(*grades.Record) bool

// Filter returns records satisfying every active part of q, in dataset
// order. Parts left at their no filter value are skipped.
func Filter(records []grades.Record, q Query) []grades.Record {
	pp := predicates(q)
	if len(pp) == 0 {
		return slices.Clone(records)
	}
	result := records
	for _, keep := range pp {
		result = narrow(result, keep)
	}
	return result
}

// predicates lists active filters in year, term, department, course number,
// course code, instructor, title order.
func predicates(q Query) []predicate {
	var pp []predicate
	if q.Year != matchers.NoFilter {
		pp = append(pp, func(r *grades.Record) bool { return matchers.Exact(q.Year, r.Year) })
	}
	if q.Term != matchers.NoFilter {
		pp = append(pp, func(r *grades.Record) bool { return matchers.Exact(q.Term, string(r.Term)) })
	}
	if q.Department != matchers.NoFilter {
		pp = append(pp, func(r *grades.Record) bool { return matchers.Exact(q.Department, r.Department) })
	}
	if strings.TrimSpace(q.CourseNumber) != "" {
		pp = append(pp, func(r *grades.Record) bool { return matchers.Range(q.CourseNumber, r.CourseNumber) })
	}
	if strings.TrimSpace(q.CourseCode) != "" {
		pp = append(pp, func(r *grades.Record) bool { return matchers.Range(q.CourseCode, r.CourseCode) })
	}
	if strings.TrimSpace(q.Instructor) != "" {
		pp = append(pp, func(r *grades.Record) bool { return matchers.Substring(q.Instructor, r.Instructor) })
	}
	if strings.TrimSpace(q.Title) != "" {
		pp = append(pp, func(r *grades.Record) bool { return matchers.Substring(q.Title, r.Title) })
	}
	return pp
}

func narrow(records []grades.Record, keep predicate) []grades.Record {
	kept := make([]grades.Record, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			kept = append(kept, records[i])
		}
	}
	return kept
}
