package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, attendanceService *AttendanceService) {
	attendanceController := &AttendanceController{AttendanceService: attendanceService}

	r.GET("/get_attendance_data", attendanceController.GetAttendanceData)
	r.POST("/save_attendance", attendanceController.SaveAttendance)
}
