package statistics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zotcurve/internal/distribution"
	"github.com/zotcurve/internal/format"
	"github.com/zotcurve/internal/grades"
)

// ByInstructor aggregates records per instructor, busiest first.
func ByInstructor(records []grades.Record) []Instructor {
	type totals struct {
		sections int
		counts   grades.Distribution
	}
	byName := map[string]*totals{}
	for _, r := range records {
		name := strings.TrimSpace(format.Capitalize(r.Instructor))
		entry, ok := byName[name]
		if !ok {
			entry = &totals{}
			byName[name] = entry
		}
		entry.sections++
		for i, count := range r.Distribution {
			entry.counts[i] += count
		}
	}

	stats := make([]Instructor, 0, len(byName))
	for name, entry := range byName {
		gpa := "N/A"
		if value, ok := distribution.GPA(entry.counts.Letters()); ok {
			gpa = fmt.Sprintf("%.3f", value)
		}
		stats = append(stats, Instructor{
			DisplayName: name,
			Sections:    entry.sections,
			Graded:      entry.counts.LetterTotal(),
			Total:       entry.counts.Total(),
			GPA:         gpa,
		})
	}
	slices.SortFunc(stats, func(a, b Instructor) int {
		if a.Sections != b.Sections {
			return b.Sections - a.Sections
		}
		return strings.Compare(a.DisplayName, b.DisplayName)
	})
	return stats
}
