package donation

type Donation struct {
	ID            int     `gorm:"primaryKey;autoIncrement" json:"id"`
	DonorName     string  `gorm:"size:100" json:"donor_name"`
	Amount        float64 `json:"amount"`
	ItemsDonated  string  `gorm:"type:text" json:"items_donated"`
	PaymentMode   string  `gorm:"size:50" json:"payment_mode"`
	PaymentDetail string  `gorm:"size:100" json:"payment_detail"`
	DonationDate  string  `gorm:"size:10;index" json:"donation_date"`
	DonationTime  string  `gorm:"size:8" json:"donation_time"`
}

func (Donation) TableName() string {
	return "donations"
}
