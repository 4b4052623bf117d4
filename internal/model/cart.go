package model

import "time"

// DefaultPrice is applied when a product arrives without a usable price.
const DefaultPrice = 45

// CartItem is one selected product in a user's cart. The composite unique
// index on (user_id, img) enforces at most one row per product per user;
// adding the same product again increments Quantity instead of inserting.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Img       string    `json:"img" gorm:"type:varchar(120);not null;uniqueIndex:idx_cart_user_img"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Price     int       `json:"price" gorm:"default:45"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_img"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
