package airport

type UpsertAirportRequest struct {
	Name      string `json:"airportName" binding:"required"`
	Continent string `json:"continent" binding:"required"`
	Country   string `json:"country" binding:"required"`
	City      string `json:"city" binding:"required"`
}
