package domain

import "time"

type Airport struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"airportName"`
	Continent string    `gorm:"not null" json:"continent"`
	Country   string    `gorm:"not null" json:"country"`
	City      string    `gorm:"not null" json:"city"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Terminal struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"terminalName"`
	AirportID int64     `gorm:"not null;index" json:"airportId"`
	Airport   *Airport  `gorm:"foreignKey:AirportID" json:"airport,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Airline struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"airlineName"`
	Code      string    `gorm:"uniqueIndex;not null" json:"airlineCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
