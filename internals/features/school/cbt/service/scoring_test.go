// file: internals/features/school/cbt/service/scoring_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objQ(correct string) QuestionPayload {
	return QuestionPayload{
		Question:      "2+2?",
		Options:       []string{"1", "2", "3", correct},
		CorrectOption: correct,
		Type:          QuestionObjective,
	}
}

func TestScore_AllCorrect(t *testing.T) {
	qs := []QuestionPayload{objQ("4"), objQ("4")}
	res := Score(qs, map[string]interface{}{"0": "4", "1": "4"})
	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 100, res.Percentage)
}

func TestScore_PartialAndUnanswered(t *testing.T) {
	qs := []QuestionPayload{objQ("4"), objQ("4"), objQ("4")}
	res := Score(qs, map[string]interface{}{"0": "4", "1": "1"})
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 3, res.TotalQuestions)
	assert.Equal(t, 33, res.Percentage) // round(33.33)
}

// Soal essay masuk totalQuestions tapi berkontribusi nol.
func TestScore_EssayContributesZero(t *testing.T) {
	qs := []QuestionPayload{
		objQ("4"),
		{Question: "Jelaskan!", Type: QuestionEssay},
	}
	res := Score(qs, map[string]interface{}{"0": "4", "1": "jawaban panjang"})
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Equal(t, 50, res.Percentage)
}

// Last write wins: jawaban yang ditimpa memakai nilai terakhir.
func TestScore_LastWriteWins(t *testing.T) {
	qs := []QuestionPayload{objQ("4")}
	answers := map[string]interface{}{}
	answers["0"] = "1"
	answers["0"] = "4" // timpa
	res := Score(qs, answers)
	assert.Equal(t, 1, res.Correct)
}

// Jawaban per index independen: menimpa index 0 tidak menyentuh
// index 1 — penyimpanan memang upsert per key, bukan tulis-ulang map.
func TestScore_IndexesIndependent(t *testing.T) {
	qs := []QuestionPayload{objQ("4"), objQ("4")}
	answers := map[string]interface{}{"1": "4"}
	answers["0"] = "1"
	answers["0"] = "4" // revisi index 0 saja
	res := Score(qs, answers)
	assert.Equal(t, 2, res.Correct)
}

func TestScore_Empty(t *testing.T) {
	res := Score(nil, nil)
	assert.Zero(t, res.Correct)
	assert.Zero(t, res.Percentage)
}

func TestValidateQuestions(t *testing.T) {
	assert.Error(t, ValidateQuestions(nil), "test kosong ditolak")

	bad := objQ("4")
	bad.Options = []string{"1", "2"}
	assert.Error(t, ValidateQuestions([]QuestionPayload{bad}), "objective wajib 4 opsi")

	bad = objQ("4")
	bad.CorrectOption = "99"
	assert.Error(t, ValidateQuestions([]QuestionPayload{bad}), "correct_option harus salah satu opsi")

	bad = objQ("4")
	bad.Type = "puzzle"
	assert.Error(t, ValidateQuestions([]QuestionPayload{bad}))

	assert.NoError(t, ValidateQuestions([]QuestionPayload{
		objQ("4"),
		{Question: "Uraikan", Type: QuestionEssay},
	}))
}

func TestEncodeDecodeQuestions(t *testing.T) {
	qs := []QuestionPayload{objQ("4")}
	raw, err := EncodeQuestions(qs)
	require.NoError(t, err)

	back, err := DecodeQuestions(raw)
	require.NoError(t, err)
	assert.Equal(t, qs, back)
}

func TestTimeBudgetExceeded(t *testing.T) {
	start := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	// 30 menit + grace 30 detik
	assert.False(t, TimeBudgetExceeded(start, start.Add(29*time.Minute), 30))
	assert.False(t, TimeBudgetExceeded(start, start.Add(30*time.Minute+15*time.Second), 30), "masih dalam grace")
	assert.True(t, TimeBudgetExceeded(start, start.Add(30*time.Minute+31*time.Second), 30))

	// durasi 0 = tanpa batas
	assert.False(t, TimeBudgetExceeded(start, start.Add(24*time.Hour), 0))
}
