package models

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID       uint    `gorm:"index;not null" json:"store_id"`
	SubCategoryID uint    `gorm:"index;not null" json:"product_subcategory"`
	ProductName   string  `gorm:"not null" json:"product_name"`
	Country       string  `json:"country"`
	Ingredients   string  `json:"ingredients"`
	Price         float64 `gorm:"not null;default:0" json:"price"`
	BestBefore    string  `json:"best_before_date"`
	Action        string  `json:"action"`
	Quantity      string  `json:"quantity"` // display value ("500 г"), not stock
	Description   string  `json:"description"`

	Store  Store          `gorm:"foreignKey:StoreID" json:"-"`
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Sales  []Sale         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sales,omitempty"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product"`
	ImageURL  string `json:"product_image"`
}
