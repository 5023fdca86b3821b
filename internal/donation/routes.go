package donation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, donationService *DonationService) {
	donationController := &DonationController{DonationService: donationService}

	r.GET("/donation", donationController.ListDonations)
	r.POST("/donation", donationController.AddDonation)
}
