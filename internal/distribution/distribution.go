package distribution

import (
	"fmt"
	"math"

	"github.com/zotcurve/internal/grades"
)

// Kind tells which grade buckets a BucketSet carries.
type Kind int

const (
	// Full carries A, B, C, D, F, P and NP.
	Full Kind = iota
	// LetterOnly carries A through F; pass/no pass counts were negligible.
	LetterOnly
	// PassNoPass carries P and NP; the class had no letter grades.
	PassNoPass
)

// negligible is the pass/no pass to letter grade ratio below which pass/no
// pass buckets are dropped.
const negligible = 0.05

type BucketSet struct {
	Kind   Kind
	Counts []int
}

// Normalize selects the buckets worth charting for d. Exactly one of the
// three kinds is chosen.
func Normalize(d grades.Distribution) BucketSet {
	letters := d.LetterTotal()
	passNoPass := d.PassNoPassTotal()

	ratio := math.Inf(1)
	if letters > 0 {
		ratio = float64(passNoPass) / float64(letters)
	}
	if ratio < negligible {
		return BucketSet{
			Kind:   LetterOnly,
			Counts: append([]int(nil), d.Letters()...),
		}
	}
	if letters == 0 {
		return BucketSet{
			Kind:   PassNoPass,
			Counts: []int{d[grades.GradeP], d[grades.GradeNP]},
		}
	}
	return BucketSet{
		Kind:   Full,
		Counts: append([]int(nil), d[:]...),
	}
}

var (
	fullLabels       = []string{"A", "B", "C", "D", "F", "P", "NP"}
	letterOnlyLabels = fullLabels[:5]
	passNoPassLabels = fullLabels[5:]
)

func (b BucketSet) Labels() []string {
	switch b.Kind {
	case LetterOnly:
		return letterOnlyLabels
	case PassNoPass:
		return passNoPassLabels
	default:
		return fullLabels
	}
}

func (b BucketSet) Total() int {
	total := 0
	for _, count := range b.Counts {
		total += count
	}
	return total
}

// Summary is the derived metric shown under the chart.
type Summary struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%s %s", s.Label, s.Value)
}

const (
	passRateLabel   = "Pass rate:"
	averageGPALabel = "Average GPA:"
	notAvailable    = "N/A"
)

// Metric computes the pass rate for pass/no pass classes and the average GPA
// over A through F otherwise.
func Metric(b BucketSet) Summary {
	if b.Kind == PassNoPass {
		total := b.Total()
		if total == 0 {
			return Summary{Label: passRateLabel, Value: notAvailable}
		}
		rate := float64(b.Counts[0]) / float64(total) * 100
		return Summary{Label: passRateLabel, Value: fmt.Sprintf("%.2f%%", rate)}
	}
	gpa, ok := GPA(b.Counts)
	if !ok {
		return Summary{Label: averageGPALabel, Value: notAvailable}
	}
	return Summary{Label: averageGPALabel, Value: fmt.Sprintf("%.3f", gpa)}
}

// GPA weights the first five counts (A through F) from 4 down to 0. It
// returns false when there are no letter grades.
func GPA(counts []int) (float64, bool) {
	total, points := 0, 0
	for i := 0; i < 5 && i < len(counts); i++ {
		total += counts[i]
		points += counts[i] * (4 - i)
	}
	if total == 0 {
		return 0, false
	}
	return float64(points) / float64(total), true
}
