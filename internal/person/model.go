package person

type Person struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	DOB      string `gorm:"size:10;column:dob" json:"dob"`
	Category string `gorm:"size:50;not null" json:"category"`
	JoinDate string `gorm:"size:10" json:"join_date"`
	Notes    string `gorm:"type:text" json:"notes"`
}

func (Person) TableName() string {
	return "people"
}

// AttributedExpense is an expense row linked back to a person, as shown
// on the profile page.
type AttributedExpense struct {
	ItemName    string  `json:"item_name"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ExpenseDate string  `gorm:"column:expense_date" json:"expense_date"`
}
