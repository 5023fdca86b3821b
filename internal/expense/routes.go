package expense

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, expenseService *ExpenseService) {
	expenseController := &ExpenseController{ExpenseService: expenseService}

	r.GET("/expense", expenseController.GetExpenseForm)
	r.POST("/expense", expenseController.AddExpense)
}
