package domain

import "time"

// Promotion is a discount window referenced by zero or more flights.
// Discount is a fraction in [0,1); the upper bound is strict so that
// reverting an applied discount (price / (1 - discount)) is always defined.
type Promotion struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Discount  float64   `gorm:"not null" json:"discount"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Promotion) Expired(now time.Time) bool {
	return p.EndDate.Before(now)
}

// EffectivePrice applies the promotion discount to a base price.
// A nil or expired promotion leaves the base price untouched.
func (p *Promotion) EffectivePrice(base float64, now time.Time) float64 {
	if p == nil || p.Expired(now) {
		return base
	}
	return base * (1 - p.Discount)
}
