package expense

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExpenseController struct {
	ExpenseService *ExpenseService
}

func (ec *ExpenseController) AddExpense(c *gin.Context) {
	var req struct {
		ItemName string  `form:"item_name" binding:"required"`
		Amount   float64 `form:"amount"`
		Category string  `form:"category"`
		Details  string  `form:"details"`
		PersonID string  `form:"person_id"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var personID *int
	if req.PersonID != "" {
		id, err := strconv.Atoi(req.PersonID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person_id"})
			return
		}
		personID = &id
	}

	e, totals, err := ec.ExpenseService.AddExpense(Expense{
		ItemName: req.ItemName,
		Amount:   req.Amount,
		Category: req.Category,
		Details:  req.Details,
		PersonID: personID,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrNonPositiveAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Error: Expense amount must be greater than zero.",
			})
		case errors.Is(err, ErrInsufficientBalance):
			zap.L().Warn("expense rejected by balance guard",
				zap.Float64("amount", req.Amount),
				zap.Float64("net_balance", totals.NetBalance),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Error: Expense (₹%g) exceeds available balance (₹%g).", req.Amount, totals.NetBalance),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Expense entry submitted successfully!",
		"expense":     e,
		"net_balance": totals.NetBalance - e.Amount,
	})
}

func (ec *ExpenseController) GetExpenseForm(c *gin.Context) {
	people, totals, err := ec.ExpenseService.FormData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"people":      people,
		"net_balance": totals.NetBalance,
	})
}
