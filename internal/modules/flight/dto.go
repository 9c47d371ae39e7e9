package flight

import "time"

type UpsertFlightRequest struct {
	FlightCode          string    `json:"flightCode" binding:"required"`
	SeatClass           string    `json:"seatClass" binding:"required"`
	Price               float64   `json:"price" binding:"required,gt=0"`
	AirlineID           int64     `json:"airlineId" binding:"required"`
	DepartureTerminalID int64     `json:"departureId" binding:"required"`
	ArrivalTerminalID   int64     `json:"arrivalId" binding:"required"`
	DepartureTime       time.Time `json:"departureTime" binding:"required"`
	ArrivalTime         time.Time `json:"arrivalTime" binding:"required"`
	TotalRows           int       `json:"totalRows" binding:"required,gt=0"`
	PromotionID         *int64    `json:"promotionId"`
	ImageURL            string    `json:"flightImg"`
}
