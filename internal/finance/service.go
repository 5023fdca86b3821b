package finance

import (
	"gorm.io/gorm"
)

type FinanceService struct {
	DB *gorm.DB
}

// ComputeTotals sums both ledger tables through the given handle, so
// callers inside a transaction see a balance consistent with their
// pending writes. Empty tables coalesce to zero.
func ComputeTotals(db *gorm.DB) (Totals, error) {
	var t Totals

	err := db.Table("donations").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&t.TotalDonations).Error
	if err != nil {
		return Totals{}, err
	}

	err = db.Table("expenses").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&t.TotalExpenses).Error
	if err != nil {
		return Totals{}, err
	}

	t.NetBalance = t.TotalDonations - t.TotalExpenses
	return t, nil
}

func (fs *FinanceService) GetTotals() (Totals, error) {
	return ComputeTotals(fs.DB)
}

// ExpenseCategories returns per-category expense sums for the dashboard
// chart.
func (fs *FinanceService) ExpenseCategories() (map[string]float64, error) {
	type catRow struct {
		Category string
		Total    float64
	}

	var rows []catRow
	err := fs.DB.Table("expenses").
		Select("category, SUM(amount) as total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make(map[string]float64, len(rows))
	for _, row := range rows {
		categories[row.Category] = row.Total
	}
	return categories, nil
}
