package finance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, financeService *FinanceService) {
	financeController := &FinanceController{FinanceService: financeService}

	r.GET("/finance", financeController.GetDashboard)
	r.GET("/get_financial_data", financeController.GetFinancialData)
}
