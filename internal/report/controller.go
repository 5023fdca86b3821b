package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *ReportService
}

func (rc *ReportController) ExportFinance(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be xlsx or csv"})
		return
	}

	contentType, filename, data, err := rc.ReportService.ExportFinance(format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
