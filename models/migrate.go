package models

import "gorm.io/gorm"

// Migrate runs AutoMigrate for every table, parents before children so
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Store{},
		&Category{},
		&SubCategory{},
		&Product{},
		&ProductImage{},
		&Sale{},
		&Cart{},
		&CartItem{},
		&Favorite{},
		&FavoriteProduct{},
		&Order{},
		&OrderItem{},
		&Review{},
		&CommentLike{},
		&SellerRequest{},
	)
}
