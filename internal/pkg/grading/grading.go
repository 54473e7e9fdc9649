// Package grading implements the grade point computation used for
// marksheets and dashboard summaries.
package grading

// Grade point scale constants. A subject's obtained marks average is
// divided by the divisor and capped at the maximum grade point.
const (
	GradePointDivisor = 25.0
	MaxGradePoint     = 4.0
)

// Mark is the grading view of one subject result.
type Mark struct {
	TheoryObtained    float64
	PracticalObtained float64
	IsAbsent          bool
}

// SubjectGradePoint computes the grade point for a single subject:
// the mean of theory and practical obtained marks, divided by the scale
// divisor, capped at 4.0. Negative inputs clamp to zero.
func SubjectGradePoint(theoryObtained, practicalObtained float64) float64 {
	avg := (theoryObtained + practicalObtained) / 2
	gp := avg / GradePointDivisor
	if gp > MaxGradePoint {
		gp = MaxGradePoint
	}
	if gp < 0 {
		gp = 0
	}
	return gp
}

// StudentGPA computes the mean grade point across a student's graded
// subjects. Absent rows are not graded subjects. The second return value
// is false when the student has no graded subjects, in which case the
// student is Not Graded and the GPA value is meaningless.
func StudentGPA(marks []Mark) (float64, bool) {
	var sum float64
	var graded int
	for _, m := range marks {
		if m.IsAbsent {
			continue
		}
		sum += SubjectGradePoint(m.TheoryObtained, m.PracticalObtained)
		graded++
	}
	if graded == 0 {
		return 0, false
	}
	return sum / float64(graded), true
}

// LetterGrade maps a GPA to the NEB letter grade band.
func LetterGrade(gpa float64) string {
	switch {
	case gpa >= 3.6:
		return "A+"
	case gpa >= 3.2:
		return "A"
	case gpa >= 2.8:
		return "B+"
	case gpa >= 2.4:
		return "B"
	case gpa >= 2.0:
		return "C+"
	case gpa >= 1.6:
		return "C"
	case gpa >= 1.2:
		return "D+"
	case gpa >= 0.8:
		return "D"
	default:
		return "E"
	}
}

// NotGradedLabel is the classification for students with no graded
// subjects in the selected year.
const NotGradedLabel = "NG"
