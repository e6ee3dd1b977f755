// file: internals/features/school/cbt/service/scoring.go
package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

// Tipe soal
const (
	QuestionObjective = "objective"
	QuestionEssay     = "essay"
	QuestionFillBlank = "fill_blank"
)

// Toleransi submit setelah durasi habis (jeda jaringan).
const finishGrace = 30 * time.Second

// QuestionPayload adalah satu soal di kolom jsonb cbt_tests.test_questions.
type QuestionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Type          string   `json:"type"` // objective|essay|fill_blank
}

// DecodeQuestions membaca jsonb soal.
func DecodeQuestions(raw datatypes.JSON) ([]QuestionPayload, error) {
	var out []QuestionPayload
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return out, nil
}

// EncodeQuestions menulis soal ke jsonb.
func EncodeQuestions(qs []QuestionPayload) (datatypes.JSON, error) {
	raw, err := sonic.Marshal(qs)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// ValidateQuestions: soal objective wajib 4 opsi dan correct_option
// harus salah satu opsinya. Essay/fill_blank bebas opsi (tidak
// di-autograde).
func ValidateQuestions(qs []QuestionPayload) error {
	if len(qs) == 0 {
		return fmt.Errorf("test must contain at least one question")
	}
	for i, q := range qs {
		switch q.Type {
		case QuestionObjective, "":
			if len(q.Options) != 4 {
				return fmt.Errorf("question %d: objective questions need exactly 4 options", i+1)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectOption {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("question %d: correct_option must be one of the options", i+1)
			}
		case QuestionEssay, QuestionFillBlank:
			// manual grading belum didukung; ikut dihitung di totalQuestions
		default:
			return fmt.Errorf("question %d: unknown type %q", i+1, q.Type)
		}
	}
	return nil
}

// ScoreResult adalah hasil penilaian satu attempt.
type ScoreResult struct {
	Correct        int
	TotalQuestions int
	Percentage     int
}

// Score menilai jawaban dengan exact match terhadap correct_option.
// Soal essay/fill_blank masuk totalQuestions tapi berkontribusi nol.
// Jawaban diambil per index soal — submit berulang pada index yang
// sama berarti last write wins, jadi hasil finish identik berapa kali
// pun jawaban ditimpa.
func Score(questions []QuestionPayload, answers map[string]interface{}) ScoreResult {
	res := ScoreResult{TotalQuestions: len(questions)}
	for i, q := range questions {
		if q.Type != QuestionObjective && q.Type != "" {
			continue
		}
		raw, ok := answers[strconv.Itoa(i)]
		if !ok {
			continue
		}
		if picked, ok := raw.(string); ok && picked == q.CorrectOption {
			res.Correct++
		}
	}
	if res.TotalQuestions > 0 {
		res.Percentage = int(math.Round(float64(res.Correct) / float64(res.TotalQuestions) * 100))
	}
	return res
}

// TimeBudgetExceeded: true bila `now` sudah melewati startedAt +
// durasi + grace. Ini kebijakan eksplisit (bukan warisan): jawaban
// setelah budget habis ditolak.
func TimeBudgetExceeded(startedAt, now time.Time, durationMinutes int) bool {
	if durationMinutes <= 0 {
		return false
	}
	deadline := startedAt.Add(time.Duration(durationMinutes)*time.Minute + finishGrace)
	return now.After(deadline)
}
