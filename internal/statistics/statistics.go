package statistics

type Instructor struct {
	DisplayName string
	Sections    int
	// Graded counts students with a letter grade.
	Graded int
	Total  int
	GPA    string
}
