// file: internals/features/school/marks/service/position_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignPositions_NoTies(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, AssignPositions([]int{90, 80, 70}))
}

// Gaya kompetisi "1224": dua siswa seri di posisi 1 mendorong siswa
// berikutnya ke posisi 3.
func TestAssignPositions_TieAtTop(t *testing.T) {
	assert.Equal(t, []int{1, 1, 3, 4}, AssignPositions([]int{50, 50, 40, 30}))
}

func TestAssignPositions_TieInMiddle(t *testing.T) {
	assert.Equal(t, []int{1, 2, 2, 4}, AssignPositions([]int{90, 80, 80, 70}))
}

func TestAssignPositions_AllTied(t *testing.T) {
	assert.Equal(t, []int{1, 1, 1}, AssignPositions([]int{60, 60, 60}))
}

func TestAssignPositions_Empty(t *testing.T) {
	assert.Empty(t, AssignPositions(nil))
}

func TestAssignPositions_Single(t *testing.T) {
	assert.Equal(t, []int{1}, AssignPositions([]int{42}))
}

func TestAssignPositions_MultipleTieGroups(t *testing.T) {
	// 100,100,90,90,90,80 → 1,1,3,3,3,6
	assert.Equal(t, []int{1, 1, 3, 3, 3, 6}, AssignPositions([]int{100, 100, 90, 90, 90, 80}))
}
