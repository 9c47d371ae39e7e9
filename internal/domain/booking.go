package domain

import "time"

type BookingStatus string

const (
	BookingUnpaid    BookingStatus = "Unpaid"
	BookingPaid      BookingStatus = "Paid"
	BookingCancelled BookingStatus = "Cancelled"
)

// Booking amounts are frozen at creation time from the flight's effective
// price and the party size; later promotion changes never touch them.
type Booking struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	Code          string        `gorm:"uniqueIndex;not null;size:12" json:"bookingCode"`
	UserID        int64         `gorm:"not null;index" json:"userId"`
	User          *User         `gorm:"foreignKey:UserID" json:"-"`
	FlightID      int64         `gorm:"not null;index" json:"flightId"`
	Flight        *Flight       `gorm:"foreignKey:FlightID" json:"flight,omitempty"`
	Adult         int           `gorm:"not null" json:"adult"`
	Child         int           `gorm:"not null" json:"child"`
	Infant        int           `gorm:"not null" json:"infant"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Status        BookingStatus `gorm:"default:Unpaid;not null" json:"status"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Passengers    []Passenger   `gorm:"foreignKey:BookingID" json:"passengers,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// PartySize is the total traveler count the booking was priced for.
func (b *Booking) PartySize() int {
	return b.Adult + b.Child + b.Infant
}
