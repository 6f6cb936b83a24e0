package models

import "time"

type WishlistItem struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string `gorm:"type:char(36);not null;index;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID string `gorm:"type:char(36);not null;index;uniqueIndex:idx_wishlist_user_product" json:"product_id"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
