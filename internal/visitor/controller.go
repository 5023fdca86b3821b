package visitor

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type VisitorController struct {
	VisitorService *VisitorService
}

func (vc *VisitorController) RecordVisit(c *gin.Context) {
	var req struct {
		Aadhar  string `form:"aadhar" binding:"required"`
		Name    string `form:"name"`
		Age     int    `form:"age"`
		Address string `form:"address"`
		Purpose string `form:"purpose"`
		Remarks string `form:"remarks"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := vc.VisitorService.RecordVisit(Visitor{
		Aadhar:  req.Aadhar,
		Name:    req.Name,
		Age:     req.Age,
		Address: req.Address,
		Purpose: req.Purpose,
		Remarks: req.Remarks,
	}, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Visitor entry submitted successfully!",
	})
}

func (vc *VisitorController) ListVisits(c *gin.Context) {
	filter := c.DefaultQuery("filter", "today")

	visitors, err := vc.VisitorService.ListVisits(filter, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"visitors": visitors,
		"filter":   filter,
	})
}
