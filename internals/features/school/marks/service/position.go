// file: internals/features/school/marks/service/position.go
package service

import (
	"sort"

	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/marks/model"
)

// AssignPositions memberi ranking gaya kompetisi ("1224") pada daftar
// total yang SUDAH terurut menurun: nilai seri berbagi posisi, dan
// posisi berikutnya melompat sebesar ukuran grup seri (dua siswa seri
// di posisi 2 → siswa berikutnya posisi 4, bukan 3).
func AssignPositions(sortedTotals []int) []int {
	positions := make([]int, len(sortedTotals))
	for i := range sortedTotals {
		if i > 0 && sortedTotals[i] == sortedTotals[i-1] {
			positions[i] = positions[i-1]
		} else {
			positions[i] = i + 1
		}
	}
	return positions
}

// RecalculatePositions memuat seluruh kohort (className, subject, term)
// dan menulis ulang posisi. Full recompute sinkron — O(ukuran kohort)
// per write, cukup untuk skala kelas.
func RecalculatePositions(tx *gorm.DB, schoolName, className, subject, term string) error {
	var rows []model.MarkModel
	if err := tx.
		Where("mark_school_name = ? AND mark_class_name = ? AND mark_subject = ? AND mark_term = ?",
			schoolName, className, subject, term).
		Order("mark_total desc").
		Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	// Order by di atas sudah menurun; sort lagi untuk jaga-jaga agar
	// deterministik terhadap perubahan di memori.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].MarkTotal > rows[j].MarkTotal })

	totals := make([]int, len(rows))
	for i := range rows {
		totals[i] = rows[i].MarkTotal
	}
	positions := AssignPositions(totals)

	for i := range rows {
		if rows[i].MarkPosition == positions[i] {
			continue
		}
		if err := tx.Model(&model.MarkModel{}).
			Where("mark_id = ?", rows[i].MarkID).
			Update("mark_position", positions[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
