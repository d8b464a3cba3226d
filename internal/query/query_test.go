package query

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zotcurve/internal/grades"
)

var records = []grades.Record{
	{ID: 0, Year: "2018to19", Term: grades.TermFall, Department: "COMPSCI", CourseNumber: "161", CourseCode: "34250", Title: "DES&ANALYS OF ALGOR", Instructor: "SHINDLER, M."},
	{ID: 1, Year: "2018to19", Term: grades.TermWinter, Department: "COMPSCI", CourseNumber: "39C", CourseCode: "34010", Title: "PROGRAMMING IN C/C++", Instructor: "SMITH, J."},
	{ID: 2, Year: "2017to18", Term: grades.TermSpring, Department: "I&C SCI", CourseNumber: "33", CourseCode: "36620", Title: "INTERMEDIATE PROGRAMMING", Instructor: "PATTIS, R."},
	{ID: 3, Year: "2017to18", Term: grades.TermFall, Department: "MATH", CourseNumber: "2A", CourseCode: "44100", Title: "SINGLE-VAR CALCULUS", Instructor: "SMITH, A."},
}

func ids(rr []grades.Record) []int {
	out := make([]int, 0, len(rr))
	for _, r := range rr {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterNoFilterIsIdentity(t *testing.T) {
	for _, r := range records {
		got := Filter([]grades.Record{r}, NoFilter())
		if diff := cmp.Diff([]grades.Record{r}, got); diff != "" {
			t.Fatalf("unexpected result (-want +got):\n%s", diff)
		}
	}
}

func TestFilter(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query Query
		want  []int
	}{
		{"year", Query{Year: "2017to18", Term: "All", Department: "All"}, []int{2, 3}},
		{"term", Query{Year: "All", Term: "Fall", Department: "All"}, []int{0, 3}},
		{"department", Query{Year: "All", Term: "All", Department: "COMPSCI"}, []int{0, 1}},
		{"course number plain", Query{Year: "All", Term: "All", Department: "All", CourseNumber: "39"}, []int{1}},
		{"course number with letter", Query{Year: "All", Term: "All", Department: "All", CourseNumber: "2a"}, []int{3}},
		{"course number range", Query{Year: "All", Term: "All", Department: "All", CourseNumber: "30-40, 161"}, []int{0, 1, 2}},
		{"course code range", Query{Year: "All", Term: "All", Department: "All", CourseCode: "34000-35000"}, []int{0, 1}},
		{"instructor", Query{Year: "All", Term: "All", Department: "All", Instructor: "smith"}, []int{1, 3}},
		{"title", Query{Year: "All", Term: "All", Department: "All", Title: " programming "}, []int{1, 2}},
		{"combined", Query{Year: "2018to19", Term: "All", Department: "COMPSCI", Instructor: "smith"}, []int{1}},
		{"none", Query{Year: "2016to17", Term: "All", Department: "All"}, []int{}},
		{"malformed token", Query{Year: "All", Term: "All", Department: "All", CourseNumber: "abc"}, []int{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(records, tc.query))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	q := Query{Year: "All", Term: "All", Department: "All", Title: "programming"}
	once := Filter(records, q)
	twice := Filter(once, q)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("filter is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	input := append([]grades.Record(nil), records...)
	got := Filter(input, NoFilter())
	got[0].Title = "changed"
	if input[0].Title == "changed" {
		t.Fatal("filter result aliases input")
	}
}

func TestIsMeaningful(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query Query
		want  bool
	}{
		{"default", Default("2018to19"), false},
		{"blank bold fields", Query{Year: "2018to19", Term: "Fall", Department: "All", CourseNumber: "161", Title: "  ", Instructor: "\t"}, false},
		{"department", Query{Year: "All", Term: "All", Department: "MATH"}, true},
		{"title", Query{Year: "All", Term: "All", Department: "All", Title: "calc"}, true},
		{"instructor", Query{Year: "All", Term: "All", Department: "All", Instructor: "smith"}, true},
		{"course code", Query{Year: "All", Term: "All", Department: "All", CourseCode: "34250"}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMeaningful(tc.query); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	if _, err := Evaluate(records, Default("2018to19")); !errors.Is(err, ErrInvalidSearch) {
		t.Fatalf("expected %q, got %v", ErrInvalidSearch, err)
	}

	got, err := Evaluate(records, Query{Year: "All", Term: "All", Department: "PHYSICS"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestFromValues(t *testing.T) {
	values := url.Values{}
	values.Set("department", "COMPSCI")
	values.Set("course_number", "161")

	got := FromValues(values)
	want := Query{
		Year:         "All",
		Term:         "All",
		Department:   "COMPSCI",
		CourseNumber: "161",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected query (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want, FromValues(want.Values())); diff != "" {
		t.Fatalf("values round trip (-want +got):\n%s", diff)
	}
}
