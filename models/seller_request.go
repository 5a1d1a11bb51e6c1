package models

import "time"

type SellerRequestStatus string

const (
	SellerRequestPending  SellerRequestStatus = "pending"
	SellerRequestApproved SellerRequestStatus = "approved"
	SellerRequestRejected SellerRequestStatus = "rejected"
)

// Decided reports whether the status is terminal.
func (s SellerRequestStatus) Decided() bool {
	return s == SellerRequestApproved || s == SellerRequestRejected
}

type SellerRequest struct {
	ID          uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string              `gorm:"uniqueIndex;not null" json:"user"` // one request per user
	PhoneNumber string              `gorm:"not null" json:"phone_number"`
	Message     string              `json:"message"`
	Status      SellerRequestStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
