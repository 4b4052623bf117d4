package model

import "time"

// Order is the immutable record of a completed checkout. Total is fixed at
// creation time from the cart rows; line items are snapshot copies, so later
// catalog or cart changes never affect historical orders.
type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	PhoneModel  string      `json:"phone_model" gorm:"type:varchar(120);not null"`
	Address     string      `json:"address" gorm:"type:varchar(220);not null"`
	City        string      `json:"city" gorm:"type:varchar(80);not null"`
	PhoneNumber string      `json:"phone_number" gorm:"type:varchar(40);not null"`
	Total       int         `json:"total" gorm:"not null;default:0"`
	CreatedAt   time.Time   `json:"created_at"`
	UserID      uint        `json:"user_id" gorm:"not null;index"`
	User        *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a snapshot of one cart row at checkout time.
type OrderItem struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Img      string `json:"img" gorm:"type:varchar(120);not null"`
	Title    string `json:"title" gorm:"type:varchar(200);not null"`
	Price    int    `json:"price" gorm:"not null;default:45"`
	Quantity int    `json:"quantity" gorm:"not null;default:1"`
	OrderID  uint   `json:"order_id" gorm:"not null;index"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
