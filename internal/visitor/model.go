package visitor

type Visitor struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:100" json:"name"`
	Aadhar    string `gorm:"size:20;not null;uniqueIndex" json:"aadhar"`
	Age       int    `json:"age"`
	Address   string `gorm:"type:text" json:"address"`
	Purpose   string `gorm:"type:text" json:"purpose"`
	Remarks   string `gorm:"type:text" json:"remarks"`
	VisitDate string `gorm:"size:10;index" json:"visit_date"`
	VisitTime string `gorm:"size:8" json:"visit_time"`
}

func (Visitor) TableName() string {
	return "visitors"
}
