package finance

// Totals is the ledger aggregate: credits, debits and their difference.
// It is recomputed from the donations and expenses tables on every call,
// never cached.
type Totals struct {
	TotalDonations float64 `json:"total_donations"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetBalance     float64 `json:"net_balance"`
}
