package models

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleClient Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleClient:
		return true
	}
	return false
}

// CanModerate: admin-only surfaces (seller requests, category management).
func (r Role) CanModerate() bool { return r == RoleAdmin }

// CanSell: store and product management.
func (r Role) CanSell() bool { return r == RoleSeller }

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber  string `gorm:"uniqueIndex" json:"phone_number"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:VARCHAR(16);default:'client'" json:"user_role"`
	ProfileIcon  string `json:"profile_icon"`

	Store         *Store         `gorm:"foreignKey:StoreOwnerID;constraint:OnDelete:CASCADE" json:"store,omitempty"`
	Cart          *Cart          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Favorite      *Favorite      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorite,omitempty"`
	SellerRequest *SellerRequest `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"seller_request,omitempty"`
	Orders        []Order        `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
