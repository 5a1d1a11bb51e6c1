package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"user"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint `gorm:"not null;uniqueIndex:idx_cart_product" json:"-"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_product" json:"product"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// TotalPrice is the line total at the product's current price.
func (ci CartItem) TotalPrice() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
