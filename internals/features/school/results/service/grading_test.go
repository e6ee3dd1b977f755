// file: internals/features/school/results/service/grading_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestComposite_AllComponents(t *testing.T) {
	// tests avg = (80+90)/2 = 85 → 25.5; project 70 → 7; exam 60 → 36
	got := Composite([]*int{intp(80), intp(90)}, intp(70), 60)
	assert.Equal(t, 68.5, got)
}

// Nilai test nil tidak dirata-rata — hanya yang terisi.
func TestComposite_PartialTests(t *testing.T) {
	got := Composite([]*int{intp(100), nil, nil, nil}, nil, 50)
	// 0.30*100 + 0.60*50 = 60
	assert.Equal(t, 60.0, got)
}

func TestComposite_ExamOnly(t *testing.T) {
	assert.Equal(t, 60.0, Composite(nil, nil, 100))
}

func TestGradeFor_Bands(t *testing.T) {
	cases := []struct {
		composite float64
		grade     string
	}{
		{100, "A1"},
		{75, "A1"},
		{74.99, "B2"},
		{70, "B2"},
		{65, "B3"},
		{60, "C4"},
		{55, "C5"},
		{50, "C6"},
		{45, "D7"},
		{40, "E8"},
		{39.99, "F9"},
		{0, "F9"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, GradeFor(tc.composite), "composite=%v", tc.composite)
	}
}

// Pass tepat di 50 (non-strict).
func TestRemarkFor_Boundary(t *testing.T) {
	assert.Equal(t, "Pass", RemarkFor(50))
	assert.Equal(t, "Fail", RemarkFor(49.99))
	assert.Equal(t, "Pass", RemarkFor(75))
}
