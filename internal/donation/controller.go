package donation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type DonationController struct {
	DonationService *DonationService
}

func (dc *DonationController) AddDonation(c *gin.Context) {
	var req struct {
		DonorName     string  `form:"donor_name" binding:"required"`
		Amount        float64 `form:"amount"`
		ItemsDonated  string  `form:"items_donated"`
		PaymentMode   string  `form:"payment_mode"`
		PaymentDetail string  `form:"payment_detail"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := dc.DonationService.AddDonation(Donation{
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		ItemsDonated:  req.ItemsDonated,
		PaymentMode:   req.PaymentMode,
		PaymentDetail: req.PaymentDetail,
	}, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Donation entry submitted successfully!",
		"donation": d,
	})
}

func (dc *DonationController) ListDonations(c *gin.Context) {
	filter := c.DefaultQuery("filter", "today")

	donations, err := dc.DonationService.ListDonations(filter, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations": donations,
		"filter":    filter,
	})
}
