package terminal

type UpsertTerminalRequest struct {
	Name      string `json:"terminalName" binding:"required"`
	AirportID int64  `json:"airportId" binding:"required"`
}
