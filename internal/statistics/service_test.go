package statistics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zotcurve/internal/grades"
)

func TestByInstructor(t *testing.T) {
	records := []grades.Record{
		{Instructor: "SMITH, J.", Distribution: grades.Distribution{10, 0, 0, 0, 0, 1, 0}},
		{Instructor: "smith, j.", Distribution: grades.Distribution{0, 10, 0, 0, 0, 0, 0}},
		{Instructor: "PATTIS, R.", Distribution: grades.Distribution{0, 0, 0, 0, 0, 9, 1}},
		{Instructor: "ALPHA, A.", Distribution: grades.Distribution{0, 0, 4, 0, 0, 0, 0}},
	}

	got := ByInstructor(records)
	want := []Instructor{
		{DisplayName: "Smith, J.", Sections: 2, Graded: 20, Total: 21, GPA: "3.500"},
		{DisplayName: "Alpha, A.", Sections: 1, Graded: 4, Total: 4, GPA: "2.000"},
		{DisplayName: "Pattis, R.", Sections: 1, Graded: 0, Total: 10, GPA: "N/A"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected statistics (-want +got):\n%s", diff)
	}
}

func TestByInstructorEmpty(t *testing.T) {
	if got := ByInstructor(nil); len(got) != 0 {
		t.Fatalf("expected no statistics, got %+v", got)
	}
}
