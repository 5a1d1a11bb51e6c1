package models

import "time"

type Sale struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       uint      `gorm:"index;not null" json:"product"`
	IsActive        bool      `gorm:"default:false" json:"is_active"`
	Description1    string    `json:"description1"`
	Description2    string    `json:"description2"`
	DiscountPercent int       `gorm:"not null;default:0" json:"discount_percent"`
	StartDate       time.Time `json:"-"`
	EndDate         time.Time `json:"-"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// DiscountedPrice applies the discount to the product's current price.
func (s Sale) DiscountedPrice(price float64) float64 {
	if s.DiscountPercent <= 0 {
		return price
	}
	return price * float64(100-s.DiscountPercent) / 100
}

// IsCurrentlyActive reports whether the sale flag is set and now falls
// within [StartDate, EndDate].
func (s Sale) IsCurrentlyActive(now time.Time) bool {
	return s.IsActive && !now.Before(s.StartDate) && !now.After(s.EndDate)
}
