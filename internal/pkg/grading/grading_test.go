package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectGradePoint(t *testing.T) {
	tests := []struct {
		name      string
		theory    float64
		practical float64
		want      float64
	}{
		{"full marks cap at 4.0", 75, 25, 2.0},
		{"perfect hundred each caps", 100, 100, 4.0},
		{"above scale still capped", 200, 200, 4.0},
		{"zero marks", 0, 0, 0},
		{"mid range", 40, 10, 1.0},
		{"negative clamps to zero", -10, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SubjectGradePoint(tt.theory, tt.practical), 1e-9)
		})
	}
}

func TestStudentGPA_NoMarksIsNotGraded(t *testing.T) {
	gpa, graded := StudentGPA(nil)
	assert.False(t, graded)
	assert.Zero(t, gpa)
}

func TestStudentGPA_AllAbsentIsNotGraded(t *testing.T) {
	marks := []Mark{
		{IsAbsent: true},
		{IsAbsent: true},
	}
	gpa, graded := StudentGPA(marks)
	assert.False(t, graded, "absent-only students must classify as NG")
	assert.Zero(t, gpa)
}

func TestStudentGPA_AveragesGradedSubjectsOnly(t *testing.T) {
	marks := []Mark{
		{TheoryObtained: 75, PracticalObtained: 25},           // 2.0
		{TheoryObtained: 100, PracticalObtained: 100},         // 4.0
		{TheoryObtained: 99, PracticalObtained: 99, IsAbsent: true}, // skipped
	}
	gpa, graded := StudentGPA(marks)
	assert.True(t, graded)
	assert.InDelta(t, 3.0, gpa, 1e-9)
}

func TestStudentGPA_NeverExceedsCap(t *testing.T) {
	marks := []Mark{
		{TheoryObtained: 500, PracticalObtained: 500},
		{TheoryObtained: 500, PracticalObtained: 500},
	}
	gpa, _ := StudentGPA(marks)
	assert.LessOrEqual(t, gpa, MaxGradePoint)
}

func TestLetterGrade(t *testing.T) {
	assert.Equal(t, "A+", LetterGrade(4.0))
	assert.Equal(t, "A+", LetterGrade(3.6))
	assert.Equal(t, "A", LetterGrade(3.59))
	assert.Equal(t, "B+", LetterGrade(2.8))
	assert.Equal(t, "C+", LetterGrade(2.0))
	assert.Equal(t, "E", LetterGrade(0.5))
}
