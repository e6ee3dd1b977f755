// file: internals/features/school/marks/controller/broadsheet_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"schoolhub_backend/internals/features/school/marks/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// GET /api/a/marks/broadsheet?class_name=&subject=&term=
// Export rekap nilai satu kohort ke file .xlsx untuk dibagikan offline.
func (ctrl *MarkController) ExportBroadsheet(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	className := c.Query("class_name")
	subject := c.Query("subject")
	term := c.Query("term")
	if className == "" || subject == "" || term == "" {
		return helper.Error(c, fiber.StatusBadRequest, "class_name, subject and term are required")
	}

	// kohort + nama siswa (join ke users)
	type row struct {
		model.MarkModel
		StudentName string `gorm:"column:user_full_name"`
	}
	var rows []row
	if err := ctrl.DB.Model(&model.MarkModel{}).
		Select("marks.*, users.user_full_name").
		Joins("JOIN users ON users.user_id = marks.mark_student_id").
		Where("mark_school_name = ? AND mark_class_name = ? AND mark_subject = ? AND mark_term = ?",
			schoolName, className, subject, term).
		Order("mark_total desc").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch marks")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Broadsheet"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Position", "Student", "1st Test", "2nd Test", "3rd Test", "Mid Term", "Examination", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		values := []interface{}{
			r.MarkPosition,
			r.StudentName,
			r.MarkFirstTest,
			r.MarkSecondTest,
			r.MarkThirdTest,
			r.MarkMidTerm,
			r.MarkExamination,
			r.MarkTotal,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build spreadsheet")
	}

	filename := fmt.Sprintf("broadsheet_%s_%s_%s.xlsx", className, subject, term)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
