package grades

type Term string

const (
	TermFall   Term = "Fall"
	TermWinter Term = "Winter"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
)

// Grade indexes a bucket of Distribution.
type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeD
	GradeF
	GradeP
	GradeNP
)

// Distribution holds grade counts in A, B, C, D, F, P, NP order.
type Distribution [7]int

func (d Distribution) Count(g Grade) int {
	return d[g]
}

// Letters returns the A through F counts.
func (d Distribution) Letters() []int {
	return d[GradeA : GradeF+1]
}

func (d Distribution) LetterTotal() int {
	total := 0
	for _, count := range d.Letters() {
		total += count
	}
	return total
}

func (d Distribution) PassNoPassTotal() int {
	return d[GradeP] + d[GradeNP]
}

func (d Distribution) Total() int {
	return d.LetterTotal() + d.PassNoPassTotal()
}

type Record struct {
	ID           int          `json:"id"`
	Year         string       `json:"year"`
	Term         Term         `json:"term"`
	Department   string       `json:"department"`
	CourseNumber string       `json:"course_number"`
	CourseCode   string       `json:"course_code"`
	Section      string       `json:"section"`
	Title        string       `json:"title"`
	Instructor   string       `json:"instructor"`
	Distribution Distribution `json:"distribution"`
}
