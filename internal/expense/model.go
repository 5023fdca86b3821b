package expense

type Expense struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemName    string  `gorm:"size:100" json:"item_name"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Category    string  `gorm:"size:50" json:"category"`
	Details     string  `gorm:"type:text" json:"details"`
	ExpenseDate string  `gorm:"size:10;index" json:"expense_date"`
	PersonID    *int    `gorm:"index" json:"person_id,omitempty"`
}

func (Expense) TableName() string {
	return "expenses"
}

// PersonOption is the subset of a person shown in the expense form's
// attribution dropdown.
type PersonOption struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
