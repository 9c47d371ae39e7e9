package domain

import "time"

type Passenger struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	BookingID      int64     `gorm:"not null;index" json:"bookingId"`
	Title          string    `gorm:"not null" json:"title"`
	FullName       string    `gorm:"not null" json:"fullName"`
	FamilyName     string    `json:"familyName"`
	BornDate       time.Time `gorm:"not null" json:"bornDate"`
	Citizen        string    `gorm:"not null" json:"citizen"`
	IdentityNumber string    `gorm:"not null" json:"identityNumber"`
	IssuingCountry string    `gorm:"not null" json:"issuingCountry"`
	ValidUntil     time.Time `gorm:"not null" json:"validUntil"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
