package visitor

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"goodlife-admin-api/internal/util"
)

type VisitorService struct {
	DB *gorm.DB
}

// RecordVisit upserts a visitor keyed by aadhar. A repeat visit only
// refreshes purpose, remarks and the visit timestamp; name, age and
// address keep their first-visit values.
func (vs *VisitorService) RecordVisit(v Visitor, now time.Time) error {
	v.VisitDate = util.DateString(now)
	v.VisitTime = util.TimeString(now)

	return vs.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "aadhar"}},
		DoUpdates: clause.AssignmentColumns([]string{"purpose", "remarks", "visit_date", "visit_time"}),
	}).Create(&v).Error
}

func (vs *VisitorService) ListVisits(filter string, now time.Time) ([]Visitor, error) {
	start, end := util.FilterWindow(filter, now)

	var visitors []Visitor
	result := vs.DB.
		Where("visit_date >= ? AND visit_date < ?", start, end).
		Order("visit_date DESC, visit_time DESC").
		Find(&visitors)
	if result.Error != nil {
		return nil, result.Error
	}
	return visitors, nil
}
