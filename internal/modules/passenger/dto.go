package passenger

import "time"

type CreatePassengerRequest struct {
	BookingID      int64     `json:"bookingId" binding:"required"`
	Title          string    `json:"title" binding:"required"`
	FullName       string    `json:"fullName" binding:"required"`
	FamilyName     string    `json:"familyName"`
	BornDate       time.Time `json:"bornDate" binding:"required"`
	Citizen        string    `json:"citizen" binding:"required"`
	IdentityNumber string    `json:"identityNumber" binding:"required"`
	IssuingCountry string    `json:"issuingCountry" binding:"required"`
	ValidUntil     time.Time `json:"validUntil" binding:"required"`
}
