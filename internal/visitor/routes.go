package visitor

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, visitorService *VisitorService) {
	visitorController := &VisitorController{VisitorService: visitorService}

	r.GET("/visitor", visitorController.ListVisits)
	r.POST("/visitor", visitorController.RecordVisit)
}
