package models

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName  string        `gorm:"uniqueIndex;not null" json:"category_name"`
	CategoryImage string        `json:"category_image"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

type SubCategory struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID       uint   `gorm:"index;not null" json:"category_id"`
	SubCategoryName  string `gorm:"uniqueIndex;not null" json:"subcategory_name"`
	SubCategoryImage string `json:"subcategory_image"`

	Products []Product `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
