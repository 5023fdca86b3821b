package attendance

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceService struct {
	DB *gorm.DB
}

// DayView lists every person LEFT JOINed with their status for the
// given date, so people without a record still appear with a null
// status.
func (as *AttendanceService) DayView(day string) ([]DayRow, error) {
	var rows []DayRow
	err := as.DB.Table("people p").
		Select("p.id, p.name, p.category, a.status").
		Joins("LEFT JOIN attendance a ON p.id = a.person_id AND a.attendance_date = ?", day).
		Order("p.category, p.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveDay upserts one row per person for the given date. Each pair hits
// the (person_id, attendance_date) unique key, so resubmitting a day
// replaces statuses instead of duplicating rows. The whole batch runs
// in one transaction; a bad entry rolls back the lot.
func (as *AttendanceService) SaveDay(day string, statuses map[string]string) error {
	return as.DB.Transaction(func(tx *gorm.DB) error {
		for personID, status := range statuses {
			id, err := strconv.Atoi(personID)
			if err != nil {
				return fmt.Errorf("invalid person id %q", personID)
			}

			rec := Attendance{PersonID: id, AttendanceDate: day, Status: status}
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "person_id"}, {Name: "attendance_date"}},
				DoUpdates: clause.AssignmentColumns([]string{"status"}),
			}).Create(&rec).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
