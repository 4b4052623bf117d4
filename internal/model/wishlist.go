package model

import "time"

// WishlistItem is a saved-for-later product. Like the cart, at most one row
// exists per (user_id, img), but re-adding is a no-op rather than a quantity
// bump.
type WishlistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Img       string    `json:"img" gorm:"type:varchar(120);not null;uniqueIndex:idx_wishlist_user_img"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Price     int       `json:"price" gorm:"default:45"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_wishlist_user_img"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
