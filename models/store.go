package models

type Store struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreOwnerID     string `gorm:"uniqueIndex;not null" json:"store_owner"` // one store per user
	StoreName        string `gorm:"not null" json:"store_name"`
	StoreImage       string `json:"store_image"`
	StoreDescription string `json:"store_description"`

	Products []Product `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
