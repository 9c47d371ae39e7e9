package domain

import "time"

// Flight's Price is the effective (promotion-adjusted) price; BasePrice is
// what it reverts to once the promotion expires or is removed.
type Flight struct {
	ID                  int64      `gorm:"primaryKey" json:"id"`
	Code                string     `gorm:"uniqueIndex;not null" json:"flightCode"`
	SeatClass           string     `gorm:"not null" json:"seatClass"`
	BasePrice           float64    `gorm:"not null" json:"basePrice"`
	Price               float64    `gorm:"not null" json:"price"`
	AirlineID           int64      `gorm:"not null;index" json:"airlineId"`
	Airline             *Airline   `gorm:"foreignKey:AirlineID" json:"airline,omitempty"`
	DepartureTerminalID int64      `gorm:"not null;index" json:"departureId"`
	DepartureTerminal   *Terminal  `gorm:"foreignKey:DepartureTerminalID" json:"departureTerminal,omitempty"`
	ArrivalTerminalID   int64      `gorm:"not null;index" json:"arrivalId"`
	ArrivalTerminal     *Terminal  `gorm:"foreignKey:ArrivalTerminalID" json:"arrivalTerminal,omitempty"`
	DepartureTime       time.Time  `gorm:"not null" json:"departureTime"`
	ArrivalTime         time.Time  `gorm:"not null" json:"arrivalTime"`
	Duration            int        `gorm:"not null" json:"duration"`
	PromotionID         *int64     `gorm:"index" json:"promotionId"`
	Promotion           *Promotion `gorm:"foreignKey:PromotionID" json:"promotion,omitempty"`
	ImageURL            string     `json:"flightImg"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// DurationMinutes derives the flight duration from its timestamps. It is
// recomputed on every write that touches either timestamp.
func DurationMinutes(departure, arrival time.Time) int {
	return int(arrival.Sub(departure).Minutes())
}
