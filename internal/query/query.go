package query

import (
	"errors"
	"net/url"
	"strings"

	"github.com/zotcurve/internal/grades"
	"github.com/zotcurve/internal/matchers"
)

var ErrInvalidSearch = errors.New("invalid search")

// Query holds raw form values, one per filterable column.
type Query struct {
	Year         string `json:"year"`
	Term         string `json:"term"`
	Department   string `json:"department"`
	CourseNumber string `json:"course_number"`
	CourseCode   string `json:"course_code"`
	Instructor   string `json:"instructor"`
	Title        string `json:"title"`
}

// Default is the state of a freshly reset search form.
func Default(year string) Query {
	if year == "" {
		year = matchers.NoFilter
	}
	return Query{
		Year:       year,
		Term:       matchers.NoFilter,
		Department: matchers.NoFilter,
	}
}

// NoFilter matches every record.
func NoFilter() Query {
	return Default(matchers.NoFilter)
}

const (
	paramYear         = "year"
	paramTerm         = "term"
	paramDepartment   = "department"
	paramCourseNumber = "course_number"
	paramCourseCode   = "course_code"
	paramInstructor   = "instructor"
	paramTitle        = "title"
)

func FromValues(values url.Values) Query {
	return Query{
		Year:         selection(values, paramYear),
		Term:         selection(values, paramTerm),
		Department:   selection(values, paramDepartment),
		CourseNumber: values.Get(paramCourseNumber),
		CourseCode:   values.Get(paramCourseCode),
		Instructor:   values.Get(paramInstructor),
		Title:        values.Get(paramTitle),
	}
}

func selection(values url.Values, key string) string {
	if v := values.Get(key); v != "" {
		return v
	}
	return matchers.NoFilter
}

func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set(paramYear, q.Year)
	values.Set(paramTerm, q.Term)
	values.Set(paramDepartment, q.Department)
	values.Set(paramCourseNumber, q.CourseNumber)
	values.Set(paramCourseCode, q.CourseCode)
	values.Set(paramInstructor, q.Instructor)
	values.Set(paramTitle, q.Title)
	return values
}

// IsMeaningful reports whether at least one of title, instructor, course code
// or department narrows the search.
func IsMeaningful(q Query) bool {
	if strings.TrimSpace(q.Title) != "" {
		return true
	}
	if strings.TrimSpace(q.Instructor) != "" {
		return true
	}
	if strings.TrimSpace(q.CourseCode) != "" {
		return true
	}
	return q.Department != matchers.NoFilter
}

// Evaluate filters records, refusing queries that are not meaningful.
func Evaluate(records []grades.Record, q Query) ([]grades.Record, error) {
	if !IsMeaningful(q) {
		return nil, ErrInvalidSearch
	}
	return Filter(records, q), nil
}
