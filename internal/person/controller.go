package person

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PersonController struct {
	PersonService *PersonService
}

func (pc *PersonController) ListPeople(c *gin.Context) {
	people, err := pc.PersonService.ListPeople()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"people": people,
	})
}

func (pc *PersonController) GetAddPersonForm(c *gin.Context) {
	categories, err := pc.PersonService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
	})
}

func (pc *PersonController) AddPerson(c *gin.Context) {
	var req struct {
		Name     string `form:"name" binding:"required"`
		DOB      string `form:"dob"`
		Category string `form:"category" binding:"required"`
		JoinDate string `form:"join_date"`
		Notes    string `form:"notes"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := pc.PersonService.AddPerson(Person{
		Name:     req.Name,
		DOB:      req.DOB,
		Category: req.Category,
		JoinDate: req.JoinDate,
		Notes:    req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": p.Name + " added successfully!",
		"person":  p,
	})
}

func (pc *PersonController) GetProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return
	}

	p, expenses, totalSpent, err := pc.PersonService.GetProfile(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"person":      p,
		"expenses":    expenses,
		"total_spent": totalSpent,
	})
}
