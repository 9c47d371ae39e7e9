package booking

import "time"

type PassengerInput struct {
	Title          string    `json:"title" binding:"required"`
	FullName       string    `json:"fullName" binding:"required"`
	FamilyName     string    `json:"familyName"`
	BornDate       time.Time `json:"bornDate" binding:"required"`
	Citizen        string    `json:"citizen" binding:"required"`
	IdentityNumber string    `json:"identityNumber" binding:"required"`
	IssuingCountry string    `json:"issuingCountry" binding:"required"`
	ValidUntil     time.Time `json:"validUntil" binding:"required"`
}

type CreateBookingRequest struct {
	FlightID   int64            `json:"flightId" binding:"required"`
	Adult      int              `json:"adult" binding:"required,gt=0"`
	Child      int              `json:"child" binding:"required,gt=0"`
	Infant     int              `json:"infant" binding:"required,gt=0"`
	Passengers []PassengerInput `json:"passengers" binding:"required,dive"`
}

// PayBookingRequest is the union of every method's fields; which of them
// must or must not be set depends on PaymentMethod. See payloadFor.
type PayBookingRequest struct {
	BookingCode   string  `json:"bookingCode" binding:"required"`
	FlightID      int64   `json:"flightId" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	SeatIDs       []int64 `json:"seatIds"`

	CardNumber string `json:"cardNumber"`
	CardCVV    string `json:"cardCvv"`
	CardExpiry string `json:"cardExpiry"` // "MM/YY"

	BankName    string `json:"bankName"`
	Store       string `json:"store"`
	Message     string `json:"message"`
	CallbackURL string `json:"callbackUrl"`
}
