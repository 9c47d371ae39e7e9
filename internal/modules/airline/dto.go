package airline

type UpsertAirlineRequest struct {
	Name string `json:"airlineName" binding:"required"`
	Code string `json:"airlineCode" binding:"required"`
}
