package person

import (
	"gorm.io/gorm"
)

type PersonService struct {
	DB *gorm.DB
}

func (ps *PersonService) ListPeople() ([]Person, error) {
	var people []Person
	result := ps.DB.Order("category, name").Find(&people)
	if result.Error != nil {
		return nil, result.Error
	}
	return people, nil
}

func (ps *PersonService) AddPerson(p Person) (Person, error) {
	result := ps.DB.Create(&p)
	if result.Error != nil {
		return Person{}, result.Error
	}
	return p, nil
}

// ListCategories returns the distinct categories already in use, for the
// add-person form's dropdown.
func (ps *PersonService) ListCategories() ([]string, error) {
	var categories []string
	result := ps.DB.Table("people").Distinct("category").Order("category").Pluck("category", &categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// GetProfile returns a person together with the expenses attributed to
// them (newest first) and the sum of those expenses.
func (ps *PersonService) GetProfile(id int) (Person, []AttributedExpense, float64, error) {
	var p Person
	if err := ps.DB.First(&p, id).Error; err != nil {
		return Person{}, nil, 0, err
	}

	var expenses []AttributedExpense
	err := ps.DB.Table("expenses").
		Select("item_name, amount, category, expense_date").
		Where("person_id = ?", id).
		Order("expense_date DESC").
		Scan(&expenses).Error
	if err != nil {
		return Person{}, nil, 0, err
	}

	var totalSpent float64
	err = ps.DB.Table("expenses").
		Select("COALESCE(SUM(amount), 0)").
		Where("person_id = ?", id).
		Scan(&totalSpent).Error
	if err != nil {
		return Person{}, nil, 0, err
	}

	return p, expenses, totalSpent, nil
}
