package models

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Review is either a top-level product review (ParentID nil) or a reply
// to another review (ParentID set). The schema does not forbid a reply
// whose parent is itself a reply; readers only ever materialize one
// level of replies.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"index;not null" json:"-"`
	ProductID uint      `gorm:"index;not null" json:"-"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	Photo1    string    `json:"photo1"`
	Photo2    string    `json:"photo2"`
	Photo3    string    `json:"photo3"`
	Photo4    string    `json:"photo4"`
	ParentID  *uint     `gorm:"index" json:"parent"`
	CreatedAt time.Time `json:"created_at"`

	User    User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product Product       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Parent  *Review       `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Replies []Review      `gorm:"foreignKey:ParentID" json:"-"`
	Likes   []CommentLike `gorm:"foreignKey:ReviewID" json:"-"`
}

func (r Review) IsReply() bool { return r.ParentID != nil }

type CommentLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID  uint      `gorm:"not null;uniqueIndex:idx_review_user" json:"review"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_review_user" json:"user"`
	CreatedAt time.Time `json:"created_at"`

	Review Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Rating aggregates cover top-level reviews only; a reply's rating field
// never feeds a product average.

// ProductAvgRating returns the mean rating over the product's top-level
// reviews, rounded to 1 decimal, or 0 when there are none.
func ProductAvgRating(db *gorm.DB, productID uint) float64 {
	var avg *float64
	db.Model(&Review{}).
		Where("product_id = ? AND parent_id IS NULL", productID).
		Select("AVG(rating)").
		Scan(&avg)
	if avg == nil {
		return 0
	}
	return math.Round(*avg*10) / 10
}

// ProductRatingCountLabel returns the exact review count up to 3 and the
// capped literal "3+" beyond.
func ProductRatingCountLabel(db *gorm.DB, productID uint) string {
	var count int64
	db.Model(&Review{}).
		Where("product_id = ? AND parent_id IS NULL", productID).
		Count(&count)
	if count > 3 {
		return "3+"
	}
	return strconv.FormatInt(count, 10)
}

// ProductGoodRate returns the share of top-level reviews with rating > 3
// as a percent string, "0%" when there are no reviews.
func ProductGoodRate(db *gorm.DB, productID uint) string {
	var total, good int64
	db.Model(&Review{}).
		Where("product_id = ? AND parent_id IS NULL", productID).
		Count(&total)
	if total == 0 {
		return "0%"
	}
	db.Model(&Review{}).
		Where("product_id = ? AND parent_id IS NULL AND rating > 3", productID).
		Count(&good)
	percent := int(math.Round(float64(good) * 100 / float64(total)))
	return fmt.Sprintf("%d%%", percent)
}

// ReviewLikesCount counts distinct (review, user) likes.
func ReviewLikesCount(db *gorm.DB, reviewID uint) int64 {
	var count int64
	db.Model(&CommentLike{}).Where("review_id = ?", reviewID).Count(&count)
	return count
}
