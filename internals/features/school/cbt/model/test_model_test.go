// file: internals/features/school/cbt/model/test_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestInWindow(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	assert.True(t, (&TestModel{}).InWindow(now), "tanpa batas = selalu terbuka")
	assert.True(t, (&TestModel{TestStartDate: &before, TestEndDate: &after}).InWindow(now))
	assert.False(t, (&TestModel{TestStartDate: &after}).InWindow(now), "belum mulai")
	assert.False(t, (&TestModel{TestEndDate: &before}).InWindow(now), "sudah lewat")

	// batas inklusif
	assert.True(t, (&TestModel{TestStartDate: &now, TestEndDate: &now}).InWindow(now))
}

func TestForClass(t *testing.T) {
	m := &TestModel{TestClassNames: pq.StringArray{"JSS1", "SS2"}}
	assert.True(t, m.ForClass("SS2"))
	assert.False(t, m.ForClass("SS3"))
	assert.False(t, m.ForClass(""))
}
