// file: internals/features/school/results/service/grading.go
package service

import "math"

// Bobot composite: rata-rata test 30%, project 10%, ujian 60%
// (konvensi CA/exam sekolah menengah).
const (
	weightTests   = 0.30
	weightProject = 0.10
	weightExam    = 0.60
)

// Batas grade 9 band (konvensi sekolah menengah Nigeria, A1..F9).
var gradeBands = []struct {
	Min   float64
	Grade string
}{
	{75, "A1"},
	{70, "B2"},
	{65, "B3"},
	{60, "C4"},
	{55, "C5"},
	{50, "C6"},
	{45, "D7"},
	{40, "E8"},
}

const passBoundary = 50.0

// Composite menghitung nilai akhir berbobot dari maksimal 4 nilai test
// (dirata-rata dari yang terisi saja), project, dan ujian. Komponen nil
// dianggap tidak diikutkan: bobotnya jatuh ke nol kontribusi, bukan
// redistribusi.
func Composite(tests []*int, project *int, exam int) float64 {
	sum, n := 0, 0
	for _, t := range tests {
		if t != nil {
			sum += *t
			n++
		}
	}

	composite := weightExam * float64(exam)
	if n > 0 {
		composite += weightTests * (float64(sum) / float64(n))
	}
	if project != nil {
		composite += weightProject * float64(*project)
	}
	return math.Round(composite*100) / 100
}

// GradeFor memetakan composite ke band huruf A1..F9.
func GradeFor(composite float64) string {
	for _, band := range gradeBands {
		if composite >= band.Min {
			return band.Grade
		}
	}
	return "F9"
}

// RemarkFor: Pass/Fail pada batas 50.
func RemarkFor(composite float64) string {
	if composite >= passBoundary {
		return "Pass"
	}
	return "Fail"
}
