package scoring

// gradeBand maps an inclusive lower bound to a letter grade and label.
type gradeBand struct {
	min   int
	grade string
	label string
}

var gradeBands = []gradeBand{
	{90, "A+", "Exceptional"},
	{80, "A", "Excellent"},
	{70, "B+", "Very Good"},
	{60, "B", "Good"},
	{50, "C+", "Average"},
	{40, "C", "Below Average"},
	{30, "D", "Needs Improvement"},
	{0, "F", "Not Ready"},
}

// GradeFor maps an overall score onto its letter grade and label.
func GradeFor(overall int) (string, string) {
	for _, band := range gradeBands {
		if overall >= band.min {
			return band.grade, band.label
		}
	}
	return "F", "Not Ready"
}
