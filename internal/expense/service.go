package expense

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"goodlife-admin-api/internal/finance"
	"goodlife-admin-api/internal/util"
)

var (
	ErrNonPositiveAmount   = errors.New("expense amount must be greater than zero")
	ErrInsufficientBalance = errors.New("expense exceeds available balance")
)

type ExpenseService struct {
	DB *gorm.DB
}

// AddExpense persists an expense only if it passes the balance guard.
// The guard and the insert run in one transaction: the balance is
// recomputed through the transaction handle, so two concurrent
// submissions cannot both pass against a stale balance and jointly
// overdraw the ledger.
//
// The returned Totals are the pre-write aggregates the guard ran
// against, whether or not the write went through.
func (es *ExpenseService) AddExpense(e Expense, now time.Time) (Expense, finance.Totals, error) {
	var totals finance.Totals

	err := es.DB.Transaction(func(tx *gorm.DB) error {
		t, err := finance.ComputeTotals(tx)
		if err != nil {
			return err
		}
		totals = t

		if e.Amount <= 0 {
			return ErrNonPositiveAmount
		}
		if e.Amount > t.NetBalance {
			return ErrInsufficientBalance
		}

		e.ExpenseDate = util.DateString(now)
		return tx.Create(&e).Error
	})
	if err != nil {
		return Expense{}, totals, err
	}

	return e, totals, nil
}

// FormData returns what the expense form needs: the people available
// for attribution and the current balance.
func (es *ExpenseService) FormData() ([]PersonOption, finance.Totals, error) {
	var people []PersonOption
	err := es.DB.Table("people").
		Select("id, name, category").
		Order("name").
		Scan(&people).Error
	if err != nil {
		return nil, finance.Totals{}, err
	}

	totals, err := finance.ComputeTotals(es.DB)
	if err != nil {
		return nil, finance.Totals{}, err
	}

	return people, totals, nil
}
