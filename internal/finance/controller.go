package finance

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	FinanceService *FinanceService
}

func (fc *FinanceController) GetDashboard(c *gin.Context) {
	totals, err := fc.FinanceService.GetTotals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (fc *FinanceController) GetFinancialData(c *gin.Context) {
	totals, err := fc.FinanceService.GetTotals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	categories, err := fc.FinanceService.ExpenseCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_donations":    totals.TotalDonations,
		"total_expenses":     totals.TotalExpenses,
		"net_balance":        totals.NetBalance,
		"expense_categories": categories,
	})
}
