package models

import "time"

type Favorite struct {
	ID     uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string            `gorm:"uniqueIndex;not null" json:"user"` // one favorite set per user
	Items  []FavoriteProduct `gorm:"foreignKey:FavoriteID;constraint:OnDelete:CASCADE" json:"items"`
}

type FavoriteProduct struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FavoriteID  uint      `gorm:"not null;uniqueIndex:idx_favorite_product" json:"-"`
	ProductID   uint      `gorm:"not null;uniqueIndex:idx_favorite_product" json:"product"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"-"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}
