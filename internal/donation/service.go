package donation

import (
	"time"

	"gorm.io/gorm"

	"goodlife-admin-api/internal/util"
)

type DonationService struct {
	DB *gorm.DB
}

// AddDonation appends a donation with a server-assigned date and time.
// Repeat donations from the same donor are independent rows.
func (ds *DonationService) AddDonation(d Donation, now time.Time) (Donation, error) {
	d.DonationDate = util.DateString(now)
	d.DonationTime = util.TimeString(now)

	result := ds.DB.Create(&d)
	if result.Error != nil {
		return Donation{}, result.Error
	}
	return d, nil
}

func (ds *DonationService) ListDonations(filter string, now time.Time) ([]Donation, error) {
	start, end := util.FilterWindow(filter, now)

	var donations []Donation
	result := ds.DB.
		Where("donation_date >= ? AND donation_date < ?", start, end).
		Order("donation_date DESC, donation_time DESC").
		Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}
	return donations, nil
}
