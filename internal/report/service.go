package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"goodlife-admin-api/internal/donation"
	"goodlife-admin-api/internal/finance"
)

type ReportService struct {
	DB *gorm.DB
}

// expenseRow carries the person's name alongside the expense for the
// report, resolved with a LEFT JOIN so unattributed rows still export.
type expenseRow struct {
	ID          int
	ItemName    string
	Amount      float64
	Category    string
	Details     string
	ExpenseDate string
	PersonName  string
}

var donationHeader = []interface{}{"id", "donor_name", "amount", "items_donated", "payment_mode", "payment_detail", "donation_date", "donation_time"}

var expenseHeader = []interface{}{"id", "item_name", "amount", "category", "details", "expense_date", "person"}

// ExportFinance renders the full ledger as a downloadable file and
// returns the content type, filename and bytes, like the admin export
// endpoints this mirrors.
func (rs *ReportService) ExportFinance(format string) (string, string, []byte, error) {
	var donations []donation.Donation
	err := rs.DB.Order("donation_date, donation_time").Find(&donations).Error
	if err != nil {
		return "", "", nil, err
	}

	var expenses []expenseRow
	err = rs.DB.Table("expenses e").
		Select("e.id, e.item_name, e.amount, e.category, e.details, e.expense_date, COALESCE(p.name, '') as person_name").
		Joins("LEFT JOIN people p ON e.person_id = p.id").
		Order("e.expense_date, e.id").
		Scan(&expenses).Error
	if err != nil {
		return "", "", nil, err
	}

	totals, err := finance.ComputeTotals(rs.DB)
	if err != nil {
		return "", "", nil, err
	}

	ts := time.Now().Format("20060102_150405")

	if format == "csv" {
		data, err := buildCSV(donations, expenses, totals)
		if err != nil {
			return "", "", nil, err
		}
		return "text/csv; charset=utf-8", fmt.Sprintf("finance_report_%s.csv", ts), data, nil
	}

	data, err := buildXLSX(donations, expenses, totals)
	if err != nil {
		return "", "", nil, err
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fmt.Sprintf("finance_report_%s.xlsx", ts), data, nil
}

func buildCSV(donations []donation.Donation, expenses []expenseRow, totals finance.Totals) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	_ = w.Write([]string{"donations"})
	_ = w.Write(toStrings(donationHeader))
	for _, d := range donations {
		_ = w.Write([]string{
			strconv.Itoa(d.ID), d.DonorName, formatAmount(d.Amount), d.ItemsDonated,
			d.PaymentMode, d.PaymentDetail, d.DonationDate, d.DonationTime,
		})
	}

	_ = w.Write([]string{})
	_ = w.Write([]string{"expenses"})
	_ = w.Write(toStrings(expenseHeader))
	for _, e := range expenses {
		_ = w.Write([]string{
			strconv.Itoa(e.ID), e.ItemName, formatAmount(e.Amount), e.Category,
			e.Details, e.ExpenseDate, e.PersonName,
		})
	}

	_ = w.Write([]string{})
	_ = w.Write([]string{"summary"})
	_ = w.Write([]string{"total_donations", formatAmount(totals.TotalDonations)})
	_ = w.Write([]string{"total_expenses", formatAmount(totals.TotalExpenses)})
	_ = w.Write([]string{"net_balance", formatAmount(totals.NetBalance)})

	w.Flush()
	return buf.Bytes(), w.Error()
}

func buildXLSX(donations []donation.Donation, expenses []expenseRow, totals finance.Totals) ([]byte, error) {
	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	styled := func(header []interface{}) []interface{} {
		out := make([]interface{}, 0, len(header))
		for _, h := range header {
			out = append(out, excelize.Cell{Value: h, StyleID: headerStyle})
		}
		return out
	}

	f.SetSheetName("Sheet1", "Donations")
	header := styled(donationHeader)
	_ = f.SetSheetRow("Donations", "A1", &header)
	for i, d := range donations {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{d.ID, d.DonorName, d.Amount, d.ItemsDonated, d.PaymentMode, d.PaymentDetail, d.DonationDate, d.DonationTime}
		_ = f.SetSheetRow("Donations", cell, &row)
	}

	f.NewSheet("Expenses")
	header = styled(expenseHeader)
	_ = f.SetSheetRow("Expenses", "A1", &header)
	for i, e := range expenses {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{e.ID, e.ItemName, e.Amount, e.Category, e.Details, e.ExpenseDate, e.PersonName}
		_ = f.SetSheetRow("Expenses", cell, &row)
	}

	f.NewSheet("Summary")
	summary := [][]interface{}{
		{excelize.Cell{Value: "total_donations", StyleID: headerStyle}, totals.TotalDonations},
		{excelize.Cell{Value: "total_expenses", StyleID: headerStyle}, totals.TotalExpenses},
		{excelize.Cell{Value: "net_balance", StyleID: headerStyle}, totals.NetBalance},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		_ = f.SetSheetRow("Summary", cell, &r)
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, fmt.Sprintf("%v", v))
	}
	return out
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
