package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, reportService *ReportService) {
	reportController := &ReportController{ReportService: reportService}

	r.GET("/export/finance", reportController.ExportFinance)
}
