package domain

import "time"

// Seat rows are created in bulk per flight: rows 1..N crossed with the
// fixed letter set A-F, numbered "{letter}-{row}".
type Seat struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	FlightID   int64     `gorm:"not null;index" json:"flightId"`
	Flight     *Flight   `gorm:"foreignKey:FlightID" json:"-"`
	SeatNumber string    `gorm:"not null" json:"seatNumber"`
	IsBooked   bool      `gorm:"default:false" json:"isBooked"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SeatLetters is the fixed per-row letter set used by bulk creation.
var SeatLetters = []string{"A", "B", "C", "D", "E", "F"}
