package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zotcurve/internal/grades"
)

// Term renders an academic year code such as "2018to19" as a calendar term:
// fall and summer fall in the first year, winter and spring in the second.
func Term(year string, term grades.Term) string {
	if len(year) < 8 {
		return fmt.Sprintf("%s %s", term, year)
	}
	switch term {
	case grades.TermFall, grades.TermSummer:
		return fmt.Sprintf("%s %s", term, year[0:4])
	default:
		return fmt.Sprintf("%s %s%s", term, year[0:2], year[6:8])
	}
}

// Capitalize upper-cases the first letter of every word and lower-cases the
// rest. Each word is followed by a single space, including the last one.
func Capitalize(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(strings.ToLower(word[size:]))
		b.WriteByte(' ')
	}
	return b.String()
}

// Subtitle is the one line description shown under a class chart.
func Subtitle(r *grades.Record) string {
	return fmt.Sprintf("%s %s %s Section %s - %s",
		Term(r.Year, r.Term),
		r.Department,
		r.CourseNumber,
		r.Section,
		Capitalize(r.Instructor))
}
