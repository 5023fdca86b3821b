package event

type Event struct {
	ID      int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title   string  `gorm:"size:200;not null" json:"title"`
	Start   string  `gorm:"size:10;not null" json:"start"`
	End     *string `gorm:"size:10" json:"end"`
	Details string  `gorm:"type:text" json:"details"`
	Color   string  `gorm:"size:20" json:"color"`
}

func (Event) TableName() string {
	return "events"
}
