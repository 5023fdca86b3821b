package person

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, personService *PersonService) {
	personController := &PersonController{PersonService: personService}

	r.GET("/people", personController.ListPeople)
	r.GET("/add_person", personController.GetAddPersonForm)
	r.POST("/add_person", personController.AddPerson)
	r.GET("/person/:id", personController.GetProfile)
}
