package promotion

type UpsertPromotionRequest struct {
	Discount  float64 `json:"discount" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   string  `json:"endDate" binding:"required"`
}
