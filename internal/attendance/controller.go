package attendance

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *AttendanceService
}

func (ac *AttendanceController) GetAttendanceData(c *gin.Context) {
	day := c.Query("date")
	if day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}

	rows, err := ac.AttendanceService.DayView(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (ac *AttendanceController) SaveAttendance(c *gin.Context) {
	var req struct {
		Date       string            `json:"date"`
		Attendance map[string]string `json:"attendance"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" || len(req.Attendance) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	if err := ac.AttendanceService.SaveDay(req.Date, req.Attendance); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Attendance for %s saved.", req.Date),
	})
}
