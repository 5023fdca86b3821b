package attendance

type Attendance struct {
	ID             int    `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID       int    `gorm:"not null;uniqueIndex:idx_attendance_person_date" json:"person_id"`
	AttendanceDate string `gorm:"size:10;not null;uniqueIndex:idx_attendance_person_date" json:"attendance_date"`
	Status         string `gorm:"size:20;not null" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// DayRow is one line of the attendance grid: every person, with their
// status for the requested date or null if none was recorded.
type DayRow struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Status   *string `json:"status"`
}
